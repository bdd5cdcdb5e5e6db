// pkg/execrun/runner_test.go
package execrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "winget install --id Git.Git", CommandLine("winget", "install", "--id", "Git.Git"))
	assert.Equal(t, `powershell -Command "Get-Module -ListAvailable"`,
		CommandLine("powershell", "-Command", "Get-Module -ListAvailable"))
	assert.Equal(t, "choco", CommandLine("choco"))
}

func TestResultOutput(t *testing.T) {
	r := &Result{Stdout: "installed\n", Stderr: "warning: slow mirror\n"}
	assert.Equal(t, "installed\nwarning: slow mirror", r.Output())

	assert.Equal(t, "", (&Result{}).Output())
	assert.Equal(t, "only stderr", (&Result{Stderr: "only stderr\n"}).Output())
}
