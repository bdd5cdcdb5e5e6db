// pkg/apt/manager_test.go
package apt

import (
	"context"
	"testing"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rigstack/rig/pkg/execrun/exectest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	m := NewManager(nil)

	m.goos = "linux"
	assert.True(t, m.Supported())

	m.goos = "windows"
	assert.False(t, m.Supported())

	m.goos = "darwin"
	assert.False(t, m.Supported())
}

func TestInstallArgs(t *testing.T) {
	m := NewManager(nil)

	assert.Equal(t, []string{"install", "--yes", "jq"}, m.InstallArgs("jq", "latest"))
	assert.Equal(t, []string{"install", "--yes", "jq"}, m.InstallArgs("jq", ""))
	assert.Equal(t, []string{"install", "--yes", "jq=1.6-2.1"}, m.InstallArgs("jq", "1.6-2.1"))
}

func TestCommand(t *testing.T) {
	m := NewManager(nil)
	assert.Equal(t, "apt-get install --yes jq", m.Command("jq", "latest"))
}

func TestInstall(t *testing.T) {
	runner := exectest.NewRunner()
	runner.Respond("apt-get install --yes jq", &execrun.Result{Stdout: "jq is already the newest version."})
	m := NewManager(&Config{Runner: runner})

	res, err := m.Install(context.Background(), "jq", "latest")
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
}

func TestInstallFailureExitCode(t *testing.T) {
	runner := exectest.NewRunner()
	runner.Respond("apt-get", &execrun.Result{Stderr: "E: Unable to locate package nope", ExitCode: 100})
	m := NewManager(&Config{Runner: runner})

	res, err := m.Install(context.Background(), "nope", "latest")
	require.NoError(t, err)
	assert.False(t, res.Succeeded())
	assert.Equal(t, 100, res.ExitCode)
}
