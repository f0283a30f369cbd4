// Package levels provides puzzle discovery and loading. It depends on
// board and formats; board does not depend on it.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tumblesolve/internal/board"
	"github.com/vovakirdan/tumblesolve/internal/levels/formats"
)

// Level is a loaded puzzle definition plus its source path.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Wild     string
	Lock     bool
	Display  map[rune]int
	Metadata map[string]string
	FilePath string

	parsed formats.Level
}

// Board builds a fresh playable board from the level.
func (l *Level) Board() (*board.Board, error) {
	return l.parsed.Board()
}

// Loader loads puzzles from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every supported puzzle file under the root,
// sorted by ID for deterministic ordering. Files that fail to parse are
// skipped; a puzzle the user names explicitly goes through LoadFile and
// surfaces its error there.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		lvl, err := LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadFile loads a single puzzle file, routing on its extension. The ID
// falls back to the file name when the file declares none.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if parsed.ID == "" {
		base := filepath.Base(path)
		parsed.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// Build once here so a broken puzzle fails at load time, not when
	// the solver asks for a board.
	if _, err := parsed.Board(); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height(),
		Wild:     parsed.Wild,
		Lock:     parsed.Lock,
		Display:  parsed.Display,
		Metadata: parsed.Metadata,
		FilePath: path,
		parsed:   parsed,
	}, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".tsb":
		return formats.ParseTSB(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
