// Package savefile stores memory game progress as a JSON file.
package savefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// FileName is the name of the save file inside the save directory.
const FileName = "saveData.json"

// NotFoundError is returned by Load when there is no save file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "savefile: no saved game at " + e.Path
}

// CorruptDataError is returned by Load when the file cannot be decoded or
// does not describe a playable game.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("savefile: corrupt save %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// Store reads and writes a single save file.
type Store struct {
	path   string
	logger *log.Logger
}

var _ memory.ProgressStore = (*Store)(nil)

// New creates a store for path. A leading ~ is expanded to the home
// directory; a path ending in a separator gets FileName appended.
// A nil logger discards debug output.
func New(path string, logger *log.Logger) (*Store, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("savefile: %w", err)
	}
	if path == "" || os.IsPathSeparator(path[len(path)-1]) {
		path = filepath.Join(path, FileName)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, logger: logger}, nil
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the save file with rec, creating its directory if needed.
func (s *Store) Save(rec memory.SaveRecord) error {
	if rec.Cards == nil {
		rec.Cards = []memory.SavedCard{}
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("savefile: cannot create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("savefile: cannot encode save: %w", err)
	}

	// Write beside the target and rename so a crash never leaves half a file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("savefile: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("savefile: cannot replace %s: %w", s.path, err)
	}

	s.logger.Debug("saved progress", "path", s.path, "cards", len(rec.Cards), "score", rec.Score)
	return nil
}

// Load reads and validates the save file.
func (s *Store) Load() (memory.SaveRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no saved progress", "path", s.path)
		return memory.SaveRecord{}, &NotFoundError{Path: s.path}
	}
	if err != nil {
		return memory.SaveRecord{}, fmt.Errorf("savefile: cannot read %s: %w", s.path, err)
	}

	var rec memory.SaveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return memory.SaveRecord{}, &CorruptDataError{Path: s.path, Err: err}
	}
	if err := rec.Validate(); err != nil {
		return memory.SaveRecord{}, &CorruptDataError{Path: s.path, Err: err}
	}

	s.logger.Debug("loaded progress", "path", s.path, "cards", len(rec.Cards), "score", rec.Score)
	return rec, nil
}

// Remove deletes the save file. A missing file is not an error.
func (s *Store) Remove() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("savefile: cannot remove %s: %w", s.path, err)
	}
	s.logger.Debug("removed saved progress", "path", s.path)
	return nil
}

// Exists reports whether a save file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
