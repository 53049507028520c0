// Package leaderboard records per-character progression standings and
// renders them in rank order. Two backends exist: the JSON file board
// in this package and the Postgres repository in storage/postgres.
package leaderboard

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
)

// ErrEntryNotFound indicates no standing exists for the requested name.
var ErrEntryNotFound = errors.New("leaderboard entry not found")

// Entry is one character's standing.
type Entry struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Purse      string `json:"purse"`
	MaxHealth  int    `json:"max_health"`
	Weapon     string `json:"weapon,omitempty"`
	Armor      string `json:"armor,omitempty"`
}

// EntryFor snapshots a character into its leaderboard standing.
func EntryFor(c *character.Character) Entry {
	e := Entry{
		Name:       c.Name,
		Level:      c.Level,
		Experience: c.Experience,
		Purse:      c.Purse.Format(),
		MaxHealth:  c.Health.Max,
	}
	if c.Weapon != nil {
		e.Weapon = c.Weapon.Name
	}
	if c.Armor != nil {
		e.Armor = c.Armor.Name
	}
	return e
}

// Upsert replaces the standing matching e.Name, or appends when absent,
// and returns the board in rank order.
//
// Postcondition: at most one entry per name; ordering is level
// descending, experience descending, then name ascending for stable
// display.
func Upsert(entries []Entry, e Entry) []Entry {
	replaced := false
	for i := range entries {
		if entries[i].Name == e.Name {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}
	Sort(entries)
	return entries
}

// Sort orders entries in rank order in place.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Level != entries[j].Level {
			return entries[i].Level > entries[j].Level
		}
		if entries[i].Experience != entries[j].Experience {
			return entries[i].Experience > entries[j].Experience
		}
		return entries[i].Name < entries[j].Name
	})
}

// Find returns the standing for name.
func Find(entries []Entry, name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}
