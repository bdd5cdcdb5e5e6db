// pkg/winget/manager_test.go
package winget

import (
	"context"
	"errors"
	"testing"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rigstack/rig/pkg/execrun/exectest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallArgs(t *testing.T) {
	m := NewManager(nil)

	args := m.InstallArgs("Git.Git", "latest", false)
	assert.Equal(t, []string{
		"install", "--id", "Git.Git", "--exact", "--silent",
		"--accept-package-agreements", "--accept-source-agreements",
	}, args)

	args = m.InstallArgs("Git.Git", "2.44.0", true)
	assert.Contains(t, args, "--version")
	assert.Contains(t, args, "2.44.0")
	assert.Contains(t, args, "--force")
}

func TestCommand(t *testing.T) {
	m := NewManager(nil)
	cmd := m.Command("Git.Git", "latest", false)
	assert.Equal(t, "winget install --id Git.Git --exact --silent --accept-package-agreements --accept-source-agreements", cmd)
}

func TestInstall(t *testing.T) {
	runner := exectest.NewRunner()
	runner.Respond("winget install --id Git.Git", &execrun.Result{Stdout: "Successfully installed"})
	m := NewManager(&Config{Runner: runner})

	res, err := m.Install(context.Background(), "Git.Git", "latest", false)
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.False(t, res.AlreadySatisfied())
}

func TestInstallSpawnFailure(t *testing.T) {
	runner := exectest.NewRunner()
	runner.RespondErr("winget", errors.New("executable file not found"))
	m := NewManager(&Config{Runner: runner})

	_, err := m.Install(context.Background(), "Git.Git", "latest", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running winget")
}

func TestAlreadySatisfiedDetection(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   bool
	}{
		{
			name:   "already installed despite nonzero exit",
			result: Result{ExitCode: 1, Output: "An existing package is Already Installed."},
			want:   true,
		},
		{
			name:   "no applicable update",
			result: Result{ExitCode: 1, Output: "No applicable update found."},
			want:   true,
		},
		{
			name:   "no available upgrade",
			result: Result{ExitCode: 1, Output: "no available upgrade found"},
			want:   true,
		},
		{
			name:   "plain failure",
			result: Result{ExitCode: 1, Output: "No package found matching input criteria."},
			want:   false,
		},
		{
			name:   "clean install",
			result: Result{ExitCode: 0, Output: "Successfully installed"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.AlreadySatisfied())
		})
	}
}
