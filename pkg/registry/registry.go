// pkg/registry/registry.go

// Package registry maps canonical package names to backend-specific
// names through an optional aliases.toml file. The dispatcher consults
// it during the fallback hop when a declaration does not carry an
// explicit alternate name.
package registry

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Entry holds the per-backend names for one canonical package.
//
//	[packages.ripgrep]
//	winget = "BurntSushi.ripgrep.MSVC"
//	choco  = "ripgrep"
type Entry struct {
	Backends map[string]string
}

// Registry provides alias lookup loaded from a single TOML file.
type Registry struct {
	entries map[string]Entry
}

type aliasFile struct {
	Packages map[string]map[string]string `toml:"packages"`
}

// Load reads an aliases file. A missing file yields an empty registry
// rather than an error; aliases are optional.
func Load(path string) (*Registry, error) {
	r := &Registry{entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("reading alias registry: %w", err)
	}

	var file aliasFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing alias registry %s: %w", path, err)
	}

	for name, backends := range file.Packages {
		r.entries[name] = Entry{Backends: backends}
	}
	return r, nil
}

// Resolve takes a canonical package name and a backend, and returns the
// backend-specific package name if one is registered.
// e.g. Resolve("ripgrep", "choco") -> "ripgrep", true
func (r *Registry) Resolve(name, backend string) (string, bool) {
	entry, ok := r.entries[name]
	if !ok {
		return "", false
	}
	alias, ok := entry.Backends[backend]
	return alias, ok
}

// Len reports the number of registered packages.
func (r *Registry) Len() int {
	return len(r.entries)
}
