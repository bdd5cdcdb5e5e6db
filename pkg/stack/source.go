// pkg/stack/source.go
package stack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	// ErrSourceNotFound indicates the stack file could not be located.
	ErrSourceNotFound = errors.New("stack not found")

	// ErrSourceEmpty indicates the stack parsed to an empty or missing
	// top-level packages collection.
	ErrSourceEmpty = errors.New("stack has no packages")

	// ErrSourceMalformed indicates the stack file failed structural
	// parsing.
	ErrSourceMalformed = errors.New("stack is malformed")

	// ErrNoSources indicates that not a single selected stack could be
	// loaded. This is the only loading condition fatal to a run.
	ErrNoSources = errors.New("no stacks could be loaded")
)

// stackExtensions are the file extensions recognized as stack files,
// in resolution order.
var stackExtensions = []string{".yaml", ".yml"}

// document mirrors the top-level structure of a stack file.
type document struct {
	Packages []map[string]interface{} `yaml:"packages"`
}

// Source loads stack files from a directory. A stack id is the file
// name without its extension.
type Source struct {
	dir    string
	logger zerolog.Logger
}

// NewSource creates a Source reading from dir.
func NewSource(dir string, logger zerolog.Logger) *Source {
	return &Source{dir: dir, logger: logger}
}

// Dir returns the directory the source reads from.
func (s *Source) Dir() string {
	return s.dir
}

// List enumerates the stack ids available in the source directory, in
// lexical order. This is also the merge order.
func (s *Source) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading stack directory %s: %w", s.dir, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		for _, known := range stackExtensions {
			if ext == known {
				ids = append(ids, strings.TrimSuffix(e.Name(), ext))
				break
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Load reads one stack and returns its package entries in file order.
func (s *Source) Load(id string) ([]Raw, error) {
	path, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, id, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, id, err)
	}
	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceEmpty, id)
	}

	raws := make([]Raw, 0, len(doc.Packages))
	for i, fields := range doc.Packages {
		raws = append(raws, Raw{Source: id, Index: i, Fields: fields})
	}

	s.logger.Debug().Str("stack", id).Int("packages", len(raws)).Msg("loaded stack")
	return raws, nil
}

// Merge loads every selected stack and concatenates their entries in
// enumeration order. A nil or empty selector selects all stacks. A
// failure loading one stack is logged and skipped; only zero loadable
// stacks is an error.
func (s *Source) Merge(ids []string) ([]Raw, error) {
	if len(ids) == 0 {
		all, err := s.List()
		if err != nil {
			return nil, err
		}
		ids = all
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: directory %s", ErrNoSources, s.dir)
	}

	var merged []Raw
	loaded := 0
	for _, id := range ids {
		raws, err := s.Load(id)
		if err != nil {
			s.logger.Warn().Str("stack", id).Err(err).Msg("skipping stack")
			continue
		}
		merged = append(merged, raws...)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w: selected %v", ErrNoSources, ids)
	}
	return merged, nil
}

// resolve maps a stack id to the file that backs it. Ids carrying a
// recognized extension are treated as explicit relative or absolute
// paths.
func (s *Source) resolve(id string) (string, error) {
	ext := filepath.Ext(id)
	for _, known := range stackExtensions {
		if ext == known {
			return id, nil
		}
	}
	for _, known := range stackExtensions {
		path := filepath.Join(s.dir, id+known)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrSourceNotFound, id, s.dir)
}
