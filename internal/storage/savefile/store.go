package savefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
)

var (
	// ErrSaveNotFound indicates no save exists at the configured path.
	ErrSaveNotFound = errors.New("save file not found")
	// ErrSaveCorrupt indicates a save exists but cannot be decoded.
	ErrSaveCorrupt = errors.New("save file corrupt")
)

// Store reads and writes a single character save at a fixed path.
type Store struct {
	path string
	log  *zap.Logger
}

// NewStore constructs a Store writing to path.
//
// Precondition: path is non-empty. The parent directory is created on
// first save.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, log: logger}
}

// Path returns the save location.
func (s *Store) Path() string {
	return s.path
}

// Save atomically persists the character: the record is written to a
// temporary file in the same directory, synced, and renamed over the
// destination so a crash mid-write never truncates an existing save.
func (s *Store) Save(c *character.Character, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	data, err := json.MarshalIndent(Encode(c, now), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary save file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing save record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing save record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary save file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing save file: %w", err)
	}

	s.log.Debug("character saved",
		zap.String("name", c.Name),
		zap.String("path", s.path))
	return nil
}

// Load reads and decodes the save.
//
// Postcondition: a missing file yields ErrSaveNotFound and an
// undecodable file yields ErrSaveCorrupt, both detectable with
// errors.Is; any other failure is returned wrapped as-is.
func (s *Store) Load() (*character.Character, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, s.path)
		}
		return nil, fmt.Errorf("reading save file %s: %w", s.path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveCorrupt, err)
	}

	c, err := Decode(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveCorrupt, err)
	}

	s.log.Debug("character loaded",
		zap.String("name", c.Name),
		zap.String("path", s.path))
	return c, nil
}
