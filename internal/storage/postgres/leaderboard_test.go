package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
	"github.com/cory-johannsen/highwizardry/internal/storage/leaderboard"
	"github.com/cory-johannsen/highwizardry/internal/storage/postgres"
	"github.com/cory-johannsen/highwizardry/internal/testutil"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func entry(name string, level, experience int) leaderboard.Entry {
	return leaderboard.Entry{
		Name:       name,
		Level:      level,
		Experience: experience,
		Purse:      "10 Shillings",
		MaxHealth:  100 + 20*(level-1),
	}
}

func TestLeaderboardRepository_UpsertAndGet(t *testing.T) {
	repo := postgres.NewLeaderboardRepository(testutil.NewPool(t))
	ctx := context.Background()

	name := uniqueName("alda")
	require.NoError(t, repo.Upsert(ctx, entry(name, 2, 250)))

	got, err := repo.GetByName(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 250, got.Experience)
	assert.Equal(t, "10 Shillings", got.Purse)
}

func TestLeaderboardRepository_UpsertReplacesByName(t *testing.T) {
	repo := postgres.NewLeaderboardRepository(testutil.NewPool(t))
	ctx := context.Background()

	name := uniqueName("bren")
	require.NoError(t, repo.Upsert(ctx, entry(name, 1, 40)))
	require.NoError(t, repo.Upsert(ctx, entry(name, 4, 1200)))

	entries, err := repo.Top(ctx, 100)
	require.NoError(t, err)

	matches := 0
	for _, e := range entries {
		if e.Name == name {
			matches++
			assert.Equal(t, 4, e.Level)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestLeaderboardRepository_TopRankOrder(t *testing.T) {
	repo := postgres.NewLeaderboardRepository(testutil.NewPool(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, entry("low", 1, 90)))
	require.NoError(t, repo.Upsert(ctx, entry("mid", 3, 650)))
	require.NoError(t, repo.Upsert(ctx, entry("high", 3, 900)))

	entries, err := repo.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "high", entries[0].Name)
	assert.Equal(t, "mid", entries[1].Name)
}

func TestLeaderboardRepository_GetByNameMissing(t *testing.T) {
	repo := postgres.NewLeaderboardRepository(testutil.NewPool(t))

	_, err := repo.GetByName(context.Background(), uniqueName("nobody"))
	assert.ErrorIs(t, err, leaderboard.ErrEntryNotFound)
}

func TestLeaderboardRepository_Record(t *testing.T) {
	repo := postgres.NewLeaderboardRepository(testutil.NewPool(t))
	ctx := context.Background()

	c := character.New(uniqueName("clio"), time.Now())
	c.Level = 5
	c.Experience = 1700
	require.NoError(t, repo.Record(ctx, c))

	got, err := repo.GetByName(ctx, c.Name)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Level)
	assert.Equal(t, c.Purse.Format(), got.Purse)
}
