// errors.go
package rig

import (
	"fmt"

	"github.com/rigstack/rig/pkg/stack"
)

// Sentinel errors for stack loading, re-exported for callers that
// match on failure class.
var (
	// ErrStackNotFound indicates a selected stack could not be located.
	ErrStackNotFound = stack.ErrSourceNotFound

	// ErrStackEmpty indicates a stack parsed to an empty or missing
	// packages collection.
	ErrStackEmpty = stack.ErrSourceEmpty

	// ErrStackMalformed indicates a stack failed structural parsing.
	ErrStackMalformed = stack.ErrSourceMalformed

	// ErrNoStacks indicates no selected stack could be loaded at all;
	// the run aborts before any dispatch.
	ErrNoStacks = stack.ErrNoSources
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package or stack name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
