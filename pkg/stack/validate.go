// pkg/stack/validate.go
package stack

import (
	"fmt"

	"github.com/rigstack/rig/pkg/backend"
	"github.com/rs/zerolog"
)

// Validate checks one raw entry against the declaration schema and
// returns the typed Declaration. Checks run in order: required fields
// present, pkgmgr a recognized backend, install a genuine boolean (a
// string or number that merely looks truthy is rejected).
func Validate(r Raw) (Declaration, error) {
	var d Declaration

	name, err := stringField(r, "name", true)
	if err != nil {
		return d, err
	}

	rawInstall, present := r.Fields["install"]
	if !present {
		return d, fmt.Errorf("missing required field %q", "install")
	}

	rawMgr, err := stringField(r, "pkgmgr", true)
	if err != nil {
		return d, err
	}
	backendType, err := backend.ParseType(rawMgr)
	if err != nil {
		return d, fmt.Errorf("invalid field %q: %v", "pkgmgr", err)
	}

	enabled, ok := rawInstall.(bool)
	if !ok {
		return d, fmt.Errorf("field %q must be a boolean, got %T", "install", rawInstall)
	}

	version, err := stringField(r, "version", false)
	if err != nil {
		return d, err
	}
	if version == "" {
		version = backend.VersionLatest
	}

	fallbackName, err := stringField(r, "choco_name", false)
	if err != nil {
		return d, err
	}

	description, _ := r.Fields["description"].(string)

	return Declaration{
		Name:         name,
		Enabled:      enabled,
		Backend:      backendType,
		Version:      version,
		FallbackName: fallbackName,
		Description:  description,
	}, nil
}

// ValidateAll validates a merged batch. Invalid entries are dropped
// with a warning naming the stack, position and offending field; the
// batch never aborts.
func ValidateAll(raws []Raw, logger zerolog.Logger) []Declaration {
	decls := make([]Declaration, 0, len(raws))
	for _, r := range raws {
		d, err := Validate(r)
		if err != nil {
			logger.Warn().
				Str("stack", r.Source).
				Int("index", r.Index).
				Err(err).
				Msg("dropping invalid declaration")
			continue
		}
		decls = append(decls, d)
	}
	return decls
}

// FilterEnabled keeps the declarations marked for installation, logging
// each disabled entry.
func FilterEnabled(decls []Declaration, logger zerolog.Logger) []Declaration {
	enabled := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		if !d.Enabled {
			logger.Info().Str("package", d.Name).Msg("skipping disabled package")
			continue
		}
		enabled = append(enabled, d)
	}
	return enabled
}

// stringField extracts a field that must be a string when present.
func stringField(r Raw, key string, required bool) (string, error) {
	v, present := r.Fields[key]
	if !present {
		if required {
			return "", fmt.Errorf("missing required field %q", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %T", key, v)
	}
	if required && s == "" {
		return "", fmt.Errorf("required field %q is empty", key)
	}
	return s, nil
}
