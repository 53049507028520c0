package leaderboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
	"github.com/cory-johannsen/highwizardry/internal/game/item"
)

func TestUpsertReplacesByName(t *testing.T) {
	entries := Upsert(nil, Entry{Name: "Alda", Level: 2, Experience: 250})
	entries = Upsert(entries, Entry{Name: "Bren", Level: 1, Experience: 80})
	entries = Upsert(entries, Entry{Name: "Alda", Level: 4, Experience: 1100})

	require.Len(t, entries, 2)
	assert.Equal(t, "Alda", entries[0].Name)
	assert.Equal(t, 4, entries[0].Level)
}

func TestSortRanksByLevelThenExperience(t *testing.T) {
	entries := []Entry{
		{Name: "Low", Level: 1, Experience: 90},
		{Name: "HighXP", Level: 3, Experience: 900},
		{Name: "LowXP", Level: 3, Experience: 650},
		{Name: "Tied", Level: 3, Experience: 900},
	}
	Sort(entries)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"HighXP", "Tied", "LowXP", "Low"}, names)
}

func TestFind(t *testing.T) {
	entries := []Entry{{Name: "Alda", Level: 2}}

	found, err := Find(entries, "Alda")
	require.NoError(t, err)
	assert.Equal(t, 2, found.Level)

	_, err = Find(entries, "Nobody")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryFor(t *testing.T) {
	c := character.New("Clio", time.Now())
	c.Level = 5
	c.Experience = 1700
	c.Health.Max = 180
	c.Weapon = &item.Weapon{Name: "Longsword", Price: 100, Damage: 10}

	e := EntryFor(c)
	assert.Equal(t, "Clio", e.Name)
	assert.Equal(t, 5, e.Level)
	assert.Equal(t, 1700, e.Experience)
	assert.Equal(t, 180, e.MaxHealth)
	assert.Equal(t, "Longsword", e.Weapon)
	assert.Empty(t, e.Armor)
}

func TestFileBoardMissingFileIsEmpty(t *testing.T) {
	board := NewFileBoard(filepath.Join(t.TempDir(), "board.json"), zap.NewNop())

	entries, err := board.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileBoardRecordRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "board.json")
	board := NewFileBoard(path, zap.NewNop())
	ctx := context.Background()

	a := character.New("Alda", time.Now())
	a.Level = 2
	a.Experience = 250
	require.NoError(t, board.Record(ctx, a))

	b := character.New("Bren", time.Now())
	b.Level = 3
	b.Experience = 640
	require.NoError(t, board.Record(ctx, b))

	a.Level = 5
	a.Experience = 1500
	require.NoError(t, board.Record(ctx, a))

	entries, err := board.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alda", entries[0].Name)
	assert.Equal(t, 5, entries[0].Level)
	assert.Equal(t, "Bren", entries[1].Name)

	top, err := board.Top(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Alda", top[0].Name)
}

func TestFileBoardCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("]["), 0o644))

	board := NewFileBoard(path, zap.NewNop())
	_, err := board.Load()
	assert.Error(t, err)
}
