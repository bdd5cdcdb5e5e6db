// pkg/execrun/exectest/runner.go

// Package exectest provides a scripted Runner for tests that exercise
// code paths normally backed by external package-manager processes.
package exectest

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigstack/rig/pkg/execrun"
)

// Call records one Run invocation observed by the fake.
type Call struct {
	Name string
	Args []string
}

// Line renders the recorded call the same way execrun.CommandLine does.
func (c Call) Line() string {
	return execrun.CommandLine(c.Name, c.Args...)
}

// Runner is a fake execrun.Runner. Responses are matched by substring
// against the rendered command line, in registration order; the first
// match wins. Unmatched commands succeed with empty output.
type Runner struct {
	Calls []Call

	responses []response
	paths     map[string]bool
}

type response struct {
	match  string
	result *execrun.Result
	err    error
}

// NewRunner creates a fake runner with no scripted responses and no
// resolvable executables.
func NewRunner() *Runner {
	return &Runner{paths: make(map[string]bool)}
}

// Respond registers a scripted result for command lines containing match.
func (r *Runner) Respond(match string, result *execrun.Result) {
	r.responses = append(r.responses, response{match: match, result: result})
}

// RespondErr registers a process start failure for command lines
// containing match.
func (r *Runner) RespondErr(match string, err error) {
	r.responses = append(r.responses, response{match: match, err: err})
}

// AddPath marks name as resolvable by LookPath.
func (r *Runner) AddPath(name string) {
	r.paths[name] = true
}

// RemovePath makes name unresolvable again.
func (r *Runner) RemovePath(name string) {
	delete(r.paths, name)
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) (*execrun.Result, error) {
	call := Call{Name: name, Args: args}
	r.Calls = append(r.Calls, call)

	line := call.Line()
	for _, resp := range r.responses {
		if strings.Contains(line, resp.match) {
			if resp.err != nil {
				return nil, resp.err
			}
			return resp.result, nil
		}
	}
	return &execrun.Result{}, nil
}

func (r *Runner) LookPath(name string) (string, error) {
	if r.paths[name] {
		return "/fake/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// Ran reports whether any recorded call's command line contains match.
func (r *Runner) Ran(match string) bool {
	for _, c := range r.Calls {
		if strings.Contains(c.Line(), match) {
			return true
		}
	}
	return false
}
