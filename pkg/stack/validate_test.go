// pkg/stack/validate_test.go
package stack

import (
	"testing"

	"github.com/rigstack/rig/pkg/backend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(fields map[string]interface{}) Raw {
	return Raw{Source: "test", Fields: fields}
}

func TestValidateAccepts(t *testing.T) {
	d, err := Validate(raw(map[string]interface{}{
		"name":        "Git.Git",
		"install":     true,
		"pkgmgr":      "winget",
		"version":     "2.44.0",
		"choco_name":  "git",
		"description": "version control",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Git.Git", d.Name)
	assert.True(t, d.Enabled)
	assert.Equal(t, backend.TypeWinget, d.Backend)
	assert.Equal(t, "2.44.0", d.Version)
	assert.Equal(t, "git", d.FallbackName)
	assert.Equal(t, "version control", d.Description)
}

func TestValidateDefaultsVersionToLatest(t *testing.T) {
	d, err := Validate(raw(map[string]interface{}{
		"name":    "ripgrep",
		"install": false,
		"pkgmgr":  "choco",
	}))
	require.NoError(t, err)
	assert.Equal(t, backend.VersionLatest, d.Version)
	assert.False(t, d.Enabled)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]interface{}
		wantErr string
	}{
		{
			name:    "missing name",
			fields:  map[string]interface{}{"install": true, "pkgmgr": "winget"},
			wantErr: `"name"`,
		},
		{
			name:    "empty name",
			fields:  map[string]interface{}{"name": "", "install": true, "pkgmgr": "winget"},
			wantErr: `"name"`,
		},
		{
			name:    "missing install",
			fields:  map[string]interface{}{"name": "x", "pkgmgr": "winget"},
			wantErr: `"install"`,
		},
		{
			name:    "install is a string",
			fields:  map[string]interface{}{"name": "x", "install": "true", "pkgmgr": "winget"},
			wantErr: `"install"`,
		},
		{
			name:    "install is a number",
			fields:  map[string]interface{}{"name": "x", "install": 1, "pkgmgr": "winget"},
			wantErr: `"install"`,
		},
		{
			name:    "missing pkgmgr",
			fields:  map[string]interface{}{"name": "x", "install": true},
			wantErr: `"pkgmgr"`,
		},
		{
			name:    "unknown pkgmgr",
			fields:  map[string]interface{}{"name": "x", "install": true, "pkgmgr": "scoop"},
			wantErr: `"pkgmgr"`,
		},
		{
			name:    "version not a string",
			fields:  map[string]interface{}{"name": "x", "install": true, "pkgmgr": "winget", "version": 1.2},
			wantErr: `"version"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(raw(tt.fields))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAllDropsInvalidAndContinues(t *testing.T) {
	raws := []Raw{
		raw(map[string]interface{}{"name": "good", "install": true, "pkgmgr": "winget"}),
		raw(map[string]interface{}{"name": "bad"}),
		raw(map[string]interface{}{"name": "also-good", "install": true, "pkgmgr": "apt"}),
	}

	decls := ValidateAll(raws, zerolog.Nop())
	require.Len(t, decls, 2)
	assert.Equal(t, "good", decls[0].Name)
	assert.Equal(t, "also-good", decls[1].Name)
}

func TestFilterEnabled(t *testing.T) {
	decls := []Declaration{
		{Name: "A", Enabled: true, Backend: backend.TypeWinget},
		{Name: "B", Enabled: false, Backend: backend.TypeGallery},
		{Name: "C", Enabled: true, Backend: backend.TypeVSCode},
	}

	enabled := FilterEnabled(decls, zerolog.Nop())
	require.Len(t, enabled, 2)
	assert.Equal(t, "A", enabled[0].Name)
	assert.Equal(t, "C", enabled[1].Name)
}
