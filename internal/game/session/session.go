// Package session provides the per-session context that owns the
// character aggregate and routes every shop, training, property, and
// combat action through the core rules.
package session

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
	"github.com/cory-johannsen/highwizardry/internal/game/combat"
	"github.com/cory-johannsen/highwizardry/internal/game/currency"
	"github.com/cory-johannsen/highwizardry/internal/game/dice"
)

const (
	// RestHealthRestore and RestManaRestore are the flat rest gains.
	RestHealthRestore = 50
	RestManaRestore   = 50
)

// ErrInsufficientFunds is returned when a purchase or training fee
// exceeds the purse. No partial deduction ever occurs.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Session owns one Character for the lifetime of a play session. There is
// exactly one mutator at a time by construction; no locking is needed.
type Session struct {
	Char *character.Character

	clock func() time.Time
	src   dice.Source
	log   *zap.Logger
}

// New creates a session around char.
//
// Precondition: char, src, clock, and logger must be non-nil.
func New(char *character.Character, src dice.Source, clock func() time.Time, logger *zap.Logger) *Session {
	return &Session{
		Char:  char,
		clock: clock,
		src:   src,
		log:   logger,
	}
}

// Snapshot is a point-in-time view of the character for status display.
type Snapshot struct {
	Name       string
	Level      int
	Experience int
	// ExperienceToNext is the cumulative threshold for the next level.
	ExperienceToNext int
	Health, Mana, Energy struct{ Current, Max int }
	Purse                currency.Amount
	Strength             int
	Agility              int
	Vitality             int
	Happiness            int
	MaxHappiness         int
	WeaponName           string
	ArmorName            string
	// EnergyRegained is the lazy regeneration applied by this query.
	EnergyRegained int
}

// Status applies lazy energy regeneration and returns a snapshot.
//
// Postcondition: repeated calls at an unchanged clock regain nothing.
func (s *Session) Status() Snapshot {
	gained := s.Char.RegenerateEnergy(s.clock())
	if gained > 0 {
		s.log.Debug("energy regenerated", zap.Int("gained", gained))
	}

	snap := Snapshot{
		Name:             s.Char.Name,
		Level:            s.Char.Level,
		Experience:       s.Char.Experience,
		ExperienceToNext: s.Char.ExperienceToNextLevel(),
		Purse:            s.Char.Purse,
		Strength:         s.Char.Strength,
		Agility:          s.Char.Agility,
		Vitality:         s.Char.Vitality,
		Happiness:        s.Char.Happiness,
		MaxHappiness:     s.Char.MaxHappiness,
		EnergyRegained:   gained,
	}
	snap.Health.Current, snap.Health.Max = s.Char.Health.Current, s.Char.Health.Max
	snap.Mana.Current, snap.Mana.Max = s.Char.Mana.Current, s.Char.Mana.Max
	snap.Energy.Current, snap.Energy.Max = s.Char.Energy.Current, s.Char.Energy.Max
	if s.Char.Weapon != nil {
		snap.WeaponName = s.Char.Weapon.Name
	}
	if s.Char.Armor != nil {
		snap.ArmorName = s.Char.Armor.Name
	}
	return snap
}

// Rest restores a flat amount of health and mana, clamped at the maximums.
func (s *Session) Rest() {
	s.Char.Heal(RestHealthRestore)
	s.Char.RestoreMana(RestManaRestore)
	s.log.Debug("rested",
		zap.Int("health", s.Char.Health.Current),
		zap.Int("mana", s.Char.Mana.Current),
	)
}

// StartCombat opens an encounter against a template drawn from the pool.
// The entry energy cost applies; see combat.Start.
func (s *Session) StartCombat(templates []*combat.Template) (*combat.Encounter, error) {
	return combat.Start(s.Char, templates, s.src, s.log, s.clock())
}
