// pkg/execrun/runner.go
package execrun

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Result holds the captured output of one external command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stdout and stderr joined, trimmed of trailing whitespace.
// Package-manager processes are inconsistent about which stream they use,
// so callers that scan for status phrases scan the combined text.
func (r *Result) Output() string {
	return strings.TrimSpace(r.Stdout + "\n" + r.Stderr)
}

// Runner abstracts external process execution so package-manager
// invocations can be faked in tests.
type Runner interface {
	// Run executes the named program with the given arguments and waits
	// for it to finish. A non-zero exit status is not an error: the
	// Result carries the exit code and the error is reserved for
	// failures to start the process at all.
	Run(ctx context.Context, name string, args ...string) (*Result, error)

	// LookPath reports the full path of an executable resolvable by
	// name on the search path.
	LookPath(name string) (string, error)
}

// ExecRunner is the Runner used in production, backed by os/exec.
type ExecRunner struct {
	logger zerolog.Logger
}

// New creates an ExecRunner that logs each invocation through logger.
func New(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	r.logger.Debug().Str("command", name).Strs("args", args).Msg("running external command")

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, err
		}
		res.ExitCode = exitErr.ExitCode()
	}

	r.logger.Debug().
		Str("command", name).
		Int("exit_code", res.ExitCode).
		Msg("external command finished")

	return res, nil
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CommandLine renders a program and its arguments as a single shell-style
// string, quoting arguments that contain whitespace. Used for dry-run
// previews and log lines, not for execution.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if strings.ContainsAny(a, " \t") {
			a = `"` + a + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
