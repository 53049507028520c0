package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
	"github.com/cory-johannsen/highwizardry/internal/storage/leaderboard"
)

// LeaderboardRepository persists character standings in the
// leaderboard table, one row per character name.
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a LeaderboardRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Upsert inserts the standing or replaces the existing row for the
// same name.
//
// Postcondition: exactly one row exists for e.Name and it reflects e.
func (r *LeaderboardRepository) Upsert(ctx context.Context, e leaderboard.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO leaderboard (name, level, experience, purse, max_health, weapon, armor, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (name) DO UPDATE SET
		   level = EXCLUDED.level,
		   experience = EXCLUDED.experience,
		   purse = EXCLUDED.purse,
		   max_health = EXCLUDED.max_health,
		   weapon = EXCLUDED.weapon,
		   armor = EXCLUDED.armor,
		   updated_at = EXCLUDED.updated_at`,
		e.Name, e.Level, e.Experience, e.Purse, e.MaxHealth, e.Weapon, e.Armor, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting leaderboard entry: %w", err)
	}
	return nil
}

// Record upserts the character's current standing.
func (r *LeaderboardRepository) Record(ctx context.Context, c *character.Character) error {
	return r.Upsert(ctx, leaderboard.EntryFor(c))
}

// Top returns up to limit standings in rank order: level descending,
// experience descending, then name ascending.
//
// Precondition: limit must be >= 1.
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, level, experience, purse, max_health, weapon, armor
		 FROM leaderboard
		 ORDER BY level DESC, experience DESC, name ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		var e leaderboard.Entry
		if err := rows.Scan(&e.Name, &e.Level, &e.Experience, &e.Purse, &e.MaxHealth, &e.Weapon, &e.Armor); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leaderboard rows: %w", err)
	}
	return entries, nil
}

// GetByName retrieves the standing for name.
//
// Postcondition: Returns the entry or leaderboard.ErrEntryNotFound.
func (r *LeaderboardRepository) GetByName(ctx context.Context, name string) (leaderboard.Entry, error) {
	var e leaderboard.Entry
	err := r.db.QueryRow(ctx,
		`SELECT name, level, experience, purse, max_health, weapon, armor
		 FROM leaderboard WHERE name = $1`,
		name,
	).Scan(&e.Name, &e.Level, &e.Experience, &e.Purse, &e.MaxHealth, &e.Weapon, &e.Armor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leaderboard.Entry{}, fmt.Errorf("%w: %s", leaderboard.ErrEntryNotFound, name)
		}
		return leaderboard.Entry{}, fmt.Errorf("querying leaderboard entry: %w", err)
	}
	return e, nil
}
