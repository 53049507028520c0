// Package savefile provides the durable character record codec and the
// atomic file store behind save/load. All schema migration logic lives
// in the decoder; the in-memory character never carries legacy fields.
package savefile

import (
	"fmt"
	"time"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
	"github.com/cory-johannsen/highwizardry/internal/game/currency"
	"github.com/cory-johannsen/highwizardry/internal/game/item"
	"github.com/cory-johannsen/highwizardry/internal/game/pool"
	"github.com/cory-johannsen/highwizardry/internal/game/property"
)

// ItemRecord is the durable form of an equipped weapon or armor piece.
type ItemRecord struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Damage      int    `json:"damage,omitempty"`
	ManaCost    int    `json:"mana_cost,omitempty"`
	Defense     int    `json:"defense,omitempty"`
}

// UpgradeRecord is the durable form of an installed property upgrade.
type UpgradeRecord struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int    `json:"price"`
	HappinessBoost int    `json:"happiness_boost"`
}

// PropertyRecord is the durable form of a portfolio property.
type PropertyRecord struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	BasePrice       int             `json:"base_price"`
	UpgradeCapacity int             `json:"upgrade_capacity,omitempty"`
	Owned           bool            `json:"owned"`
	ForSale         bool            `json:"for_sale,omitempty"`
	ForRent         bool            `json:"for_rent,omitempty"`
	ListingPrice    int             `json:"listing_price,omitempty"`
	Upgrades        []UpgradeRecord `json:"upgrades,omitempty"`
}

// Record is the flat field-keyed durable character snapshot.
//
// Currency appears either as the modern shillings/pennies pair or, in
// historical saves, as a single pooled "gold" value in pennies. Pointer
// fields distinguish absent keys from zero values where the default is
// not zero.
type Record struct {
	Name             string `json:"name"`
	Health           int    `json:"health"`
	MaxHealth        int    `json:"max_health"`
	Mana             int    `json:"mana"`
	MaxMana          int    `json:"max_mana"`
	Energy           int    `json:"energy"`
	MaxEnergy        int    `json:"max_energy"`
	Experience       int    `json:"experience"`
	Level            int    `json:"level"`
	LastEnergyUpdate string `json:"last_energy_update"`

	Shillings *int `json:"shillings,omitempty"`
	Pennies   *int `json:"pennies,omitempty"`
	// Gold is the legacy single-denomination field, in pennies.
	Gold *int `json:"gold,omitempty"`

	Strength int `json:"strength,omitempty"`
	Agility  int `json:"agility,omitempty"`
	Vitality int `json:"vitality,omitempty"`

	Weapon *ItemRecord `json:"weapon"`
	Armor  *ItemRecord `json:"armor"`

	Happiness    int              `json:"happiness,omitempty"`
	MaxHappiness *int             `json:"max_happiness,omitempty"`
	Properties   []PropertyRecord `json:"properties,omitempty"`

	SavedAt string `json:"saved_at,omitempty"`
}

// Encode converts the live character into a durable Record.
//
// Postcondition: timestamps are RFC 3339 (sortable); currency appears
// only in the pair form.
func Encode(c *character.Character, now time.Time) Record {
	rec := Record{
		Name:             c.Name,
		Health:           c.Health.Current,
		MaxHealth:        c.Health.Max,
		Mana:             c.Mana.Current,
		MaxMana:          c.Mana.Max,
		Energy:           c.Energy.Current,
		MaxEnergy:        c.Energy.Max,
		Experience:       c.Experience,
		Level:            c.Level,
		LastEnergyUpdate: c.LastEnergyUpdate.UTC().Format(time.RFC3339),
		Shillings:        intPtr(c.Purse.Shillings),
		Pennies:          intPtr(c.Purse.Pennies),
		Strength:         c.Strength,
		Agility:          c.Agility,
		Vitality:         c.Vitality,
		Happiness:        c.Happiness,
		MaxHappiness:     intPtr(c.MaxHappiness),
		SavedAt:          now.UTC().Format(time.RFC3339),
	}

	if c.Weapon != nil {
		rec.Weapon = &ItemRecord{
			Type:        "weapon",
			Name:        c.Weapon.Name,
			Description: c.Weapon.Description,
			Price:       c.Weapon.Price,
			Damage:      c.Weapon.Damage,
			ManaCost:    c.Weapon.ManaCost,
		}
	}
	if c.Armor != nil {
		rec.Armor = &ItemRecord{
			Type:        "armor",
			Name:        c.Armor.Name,
			Description: c.Armor.Description,
			Price:       c.Armor.Price,
			Defense:     c.Armor.Defense,
		}
	}

	for _, p := range c.Properties {
		pr := PropertyRecord{
			Name:            p.Name,
			Description:     p.Description,
			BasePrice:       p.BasePrice,
			UpgradeCapacity: p.UpgradeCapacity,
			Owned:           p.Owned,
			ForSale:         p.ForSale,
			ForRent:         p.ForRent,
			ListingPrice:    p.ListingPrice,
		}
		for _, u := range p.Upgrades {
			pr.Upgrades = append(pr.Upgrades, UpgradeRecord{
				Name:           u.Name,
				Description:    u.Description,
				Price:          u.Price,
				HappinessBoost: u.HappinessBoost,
			})
		}
		rec.Properties = append(rec.Properties, pr)
	}

	return rec
}

// Decode reconstructs a character from a durable Record, substituting
// documented defaults for absent optional keys and converting the legacy
// pooled currency form into the pair form.
//
// Postcondition: the returned character satisfies every aggregate
// invariant (pool bounds, level >= 1, happiness within range) even when
// the record was written by an older schema.
func Decode(rec Record) (*character.Character, error) {
	lastUpdate := time.Time{}
	if rec.LastEnergyUpdate != "" {
		t, err := time.Parse(time.RFC3339, rec.LastEnergyUpdate)
		if err != nil {
			return nil, fmt.Errorf("parsing last_energy_update %q: %w", rec.LastEnergyUpdate, err)
		}
		lastUpdate = t
	}

	c := &character.Character{
		Name:             rec.Name,
		Health:           clampPool(rec.Health, rec.MaxHealth),
		Mana:             clampPool(rec.Mana, rec.MaxMana),
		Energy:           clampPool(rec.Energy, rec.MaxEnergy),
		LastEnergyUpdate: lastUpdate,
		Experience:       rec.Experience,
		Level:            rec.Level,
		Strength:         rec.Strength,
		Agility:          rec.Agility,
		Vitality:         rec.Vitality,
		Happiness:        rec.Happiness,
		MaxHappiness:     character.MaxHappiness,
	}
	if c.Experience < 0 {
		c.Experience = 0
	}
	if c.Level < 1 {
		c.Level = 1
	}
	if rec.MaxHappiness != nil {
		c.MaxHappiness = *rec.MaxHappiness
	}
	if c.Happiness < 0 {
		c.Happiness = 0
	}
	if c.Happiness > c.MaxHappiness {
		c.Happiness = c.MaxHappiness
	}

	c.Purse = decodeCurrency(rec)

	if rec.Weapon != nil {
		c.Weapon = &item.Weapon{
			Name:        rec.Weapon.Name,
			Description: rec.Weapon.Description,
			Price:       rec.Weapon.Price,
			Damage:      rec.Weapon.Damage,
			ManaCost:    rec.Weapon.ManaCost,
		}
	}
	if rec.Armor != nil {
		c.Armor = &item.Armor{
			Name:        rec.Armor.Name,
			Description: rec.Armor.Description,
			Price:       rec.Armor.Price,
			Defense:     rec.Armor.Defense,
		}
	}

	for _, pr := range rec.Properties {
		p := &property.Property{
			Name:            pr.Name,
			Description:     pr.Description,
			BasePrice:       pr.BasePrice,
			UpgradeCapacity: pr.UpgradeCapacity,
			Owned:           pr.Owned,
			ForSale:         pr.ForSale,
			ForRent:         pr.ForRent,
			ListingPrice:    pr.ListingPrice,
		}
		// A corrupt record could carry both listing flags; sale wins.
		if p.ForSale && p.ForRent {
			p.ForRent = false
		}
		for _, ur := range pr.Upgrades {
			p.Upgrades = append(p.Upgrades, property.Upgrade{
				Name:           ur.Name,
				Description:    ur.Description,
				Price:          ur.Price,
				HappinessBoost: ur.HappinessBoost,
			})
		}
		c.Properties = append(c.Properties, p)
	}

	return c, nil
}

// decodeCurrency normalizes either schema variant into the pair form:
// the modern shillings/pennies pair wins when present; otherwise a
// legacy pooled gold value converts as gold/12 shillings, gold%12
// pennies. A negative total is repaired to an empty purse.
func decodeCurrency(rec Record) currency.Amount {
	if rec.Shillings != nil || rec.Pennies != nil {
		a := currency.Amount{}
		if rec.Shillings != nil {
			a.Shillings = *rec.Shillings
		}
		if rec.Pennies != nil {
			a.Pennies = *rec.Pennies
		}
		total := a.TotalPennies()
		if total < 0 {
			total = 0
		}
		return currency.FromPennies(total)
	}
	if rec.Gold != nil && *rec.Gold > 0 {
		return currency.FromPennies(*rec.Gold)
	}
	return currency.Amount{}
}

// clampPool rebuilds a pool from durable values, repairing out-of-range
// data rather than failing the load.
func clampPool(current, max int) pool.Pool {
	if max < 1 {
		max = 1
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	return pool.Pool{Current: current, Max: max}
}

func intPtr(v int) *int { return &v }
