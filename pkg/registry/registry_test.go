// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAliases = `
[packages."Git.Git"]
choco = "git"
apt   = "git"

[packages."BurntSushi.ripgrep.MSVC"]
choco = "ripgrep"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleAliases), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	name, ok := r.Resolve("Git.Git", "choco")
	assert.True(t, ok)
	assert.Equal(t, "git", name)

	name, ok = r.Resolve("BurntSushi.ripgrep.MSVC", "choco")
	assert.True(t, ok)
	assert.Equal(t, "ripgrep", name)
}

func TestLoadMissingFileYieldsEmptyRegistry(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())

	_, ok := r.Resolve("anything", "choco")
	assert.False(t, ok)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	require.NoError(t, os.WriteFile(path, []byte("packages = [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing alias registry")
}

func TestResolveMisses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleAliases), 0o644))
	r, err := Load(path)
	require.NoError(t, err)

	_, ok := r.Resolve("Unknown.Package", "choco")
	assert.False(t, ok, "unregistered package")

	_, ok = r.Resolve("BurntSushi.ripgrep.MSVC", "apt")
	assert.False(t, ok, "registered package, unregistered backend")
}
