// pkg/probe/probe_test.go
package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rigstack/rig/pkg/execrun/exectest"
	"github.com/stretchr/testify/assert"
)

func newWindowsProbe(runner execrun.Runner) *Probe {
	p := New(&Config{Runner: runner})
	p.goos = "windows"
	return p
}

func TestCommandAvailable(t *testing.T) {
	runner := exectest.NewRunner()
	p := New(&Config{Runner: runner})

	assert.False(t, p.CommandAvailable("winget"))
	runner.AddPath("winget")
	assert.True(t, p.CommandAvailable("winget"))
}

func TestPrivilegedSession(t *testing.T) {
	runner := exectest.NewRunner()
	runner.Respond("IsInRole", &execrun.Result{Stdout: "True\r\n"})
	p := newWindowsProbe(runner)

	assert.True(t, p.PrivilegedSession(context.Background()))
}

func TestPrivilegedSessionDenied(t *testing.T) {
	runner := exectest.NewRunner()
	runner.Respond("IsInRole", &execrun.Result{Stdout: "False\r\n"})
	p := newWindowsProbe(runner)

	assert.False(t, p.PrivilegedSession(context.Background()))
}

func TestPrivilegedSessionProbeError(t *testing.T) {
	runner := exectest.NewRunner()
	runner.RespondErr("IsInRole", errors.New("powershell missing"))
	p := newWindowsProbe(runner)

	assert.False(t, p.PrivilegedSession(context.Background()))
}

func TestPolicyAcceptable(t *testing.T) {
	tests := []struct {
		policy string
		want   bool
	}{
		{"RemoteSigned", true},
		{"Unrestricted", true},
		{"Bypass", true},
		{"Restricted", false},
		{"AllSigned", false},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			runner := exectest.NewRunner()
			runner.Respond("Get-ExecutionPolicy", &execrun.Result{Stdout: tt.policy + "\r\n"})
			p := newWindowsProbe(runner)
			assert.Equal(t, tt.want, p.PolicyAcceptable(context.Background()))
		})
	}
}

func TestPolicyAcceptableOffWindows(t *testing.T) {
	p := New(&Config{Runner: exectest.NewRunner()})
	p.goos = "linux"
	assert.True(t, p.PolicyAcceptable(context.Background()))
}

func TestOSSupported(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{"windows 10 2004", "10\r\n19041\r\n", true},
		{"windows 11", "10\r\n22631\r\n", true},
		{"windows 10 1909", "10\r\n18363\r\n", false},
		{"garbage output", "ten\r\nlots\r\n", false},
		{"missing build line", "10\r\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := exectest.NewRunner()
			runner.Respond("OSVersion", &execrun.Result{Stdout: tt.output})
			p := newWindowsProbe(runner)
			assert.Equal(t, tt.want, p.OSSupported(context.Background()))
		})
	}
}

func TestOSSupportedOffWindows(t *testing.T) {
	p := New(&Config{Runner: exectest.NewRunner()})
	p.goos = "darwin"
	assert.False(t, p.OSSupported(context.Background()))
}
