// pkg/psgallery/manager_test.go
package psgallery

import (
	"context"
	"testing"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rigstack/rig/pkg/execrun/exectest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstalledVersions(t *testing.T) {
	runner := exectest.NewRunner()
	runner.Respond("Get-Module -ListAvailable -Name 'Pester'", &execrun.Result{Stdout: "5.5.0\r\n3.4.0\r\n"})
	m := NewManager(&Config{Runner: runner})

	versions, err := m.InstalledVersions(context.Background(), "Pester")
	require.NoError(t, err)
	assert.Equal(t, []string{"5.5.0", "3.4.0"}, versions)
}

func TestInstalledVersionsQueryFailure(t *testing.T) {
	runner := exectest.NewRunner()
	runner.Respond("Get-Module", &execrun.Result{Stderr: "boom", ExitCode: 1})
	m := NewManager(&Config{Runner: runner})

	_, err := m.InstalledVersions(context.Background(), "Pester")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 1")
}

func TestInstall(t *testing.T) {
	runner := exectest.NewRunner()
	m := NewManager(&Config{Runner: runner})

	res, err := m.Install(context.Background(), "Pester", "5.5.0")
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.True(t, runner.Ran("Install-Module -Name 'Pester' -Force -Scope CurrentUser -AllowClobber -RequiredVersion '5.5.0'"))
}

func TestInstallLatestOmitsRequiredVersion(t *testing.T) {
	runner := exectest.NewRunner()
	m := NewManager(&Config{Runner: runner})

	_, err := m.Install(context.Background(), "Pester", "latest")
	require.NoError(t, err)
	assert.True(t, runner.Ran("Install-Module -Name 'Pester' -Force -Scope CurrentUser -AllowClobber"))
	assert.False(t, runner.Ran("-RequiredVersion"))
}

func TestSingleQuotesEscaped(t *testing.T) {
	m := NewManager(&Config{Runner: exectest.NewRunner()})
	cmd := m.installCommand("O'Brien", "latest")
	assert.Contains(t, cmd, "'O''Brien'")
}
