// pkg/stack/types.go

// Package stack loads, merges and validates package declarations from
// stack files. A stack is one YAML document with a top-level packages
// list; each entry declares one desired package and the backend that
// owns it.
package stack

import (
	"github.com/rigstack/rig/pkg/backend"
)

// Raw is one package entry exactly as it appeared in a stack file,
// prior to validation. Fields holds the decoded YAML mapping so the
// validator can check both presence and type of every field.
type Raw struct {
	Source string // stack id the entry came from
	Index  int    // position within that stack's packages list
	Fields map[string]interface{}
}

// Declaration is one validated desired-package entry. A Declaration is
// either fully valid or was dropped during validation; no partially
// valid entries reach the dispatcher.
type Declaration struct {
	Name         string
	Enabled      bool
	Backend      backend.Type
	Version      string // concrete token or "latest"
	FallbackName string // alternate name for the choco fallback hop
	Description  string
}
