package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
)

// FileBoard persists the leaderboard as a JSON array on disk.
type FileBoard struct {
	path string
	log  *zap.Logger
}

// NewFileBoard constructs a board backed by path.
func NewFileBoard(path string, logger *zap.Logger) *FileBoard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileBoard{path: path, log: logger}
}

// Load reads the current standings.
//
// Postcondition: a missing file is an empty board, not an error.
func (b *FileBoard) Load() ([]Entry, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading leaderboard %s: %w", b.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding leaderboard %s: %w", b.path, err)
	}
	Sort(entries)
	return entries, nil
}

// Top returns up to limit standings in rank order. The context is
// accepted for interface parity with the Postgres repository.
func (b *FileBoard) Top(_ context.Context, limit int) ([]Entry, error) {
	entries, err := b.Load()
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Record upserts the character's standing and writes the board back
// with the same write-then-rename discipline the save store uses.
func (b *FileBoard) Record(_ context.Context, c *character.Character) error {
	entries, err := b.Load()
	if err != nil {
		return err
	}
	entries = Upsert(entries, EntryFor(c))

	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("creating leaderboard directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding leaderboard: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary leaderboard file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing leaderboard: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary leaderboard file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("replacing leaderboard: %w", err)
	}

	b.log.Debug("leaderboard updated",
		zap.String("name", c.Name),
		zap.Int("entries", len(entries)))
	return nil
}
