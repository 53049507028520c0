// Package character defines the character aggregate and the pure stat,
// progression, and happiness arithmetic that mutates it.
package character

import (
	"time"

	"github.com/cory-johannsen/highwizardry/internal/game/currency"
	"github.com/cory-johannsen/highwizardry/internal/game/dice"
	"github.com/cory-johannsen/highwizardry/internal/game/item"
	"github.com/cory-johannsen/highwizardry/internal/game/pool"
	"github.com/cory-johannsen/highwizardry/internal/game/property"
)

const (
	// BaseAttackDamage is the unarmed damage floor for every attack.
	BaseAttackDamage = 10
	// StrengthDamageBonus is the extra damage per strength point.
	StrengthDamageBonus = 3
	// VitalityDefenseBonus is the extra defense per vitality point.
	VitalityDefenseBonus = 2
	// AgilityDodgeBonus is the dodge percentage per agility point.
	AgilityDodgeBonus = 2
	// DodgeChanceCap is the maximum dodge percentage regardless of agility.
	DodgeChanceCap = 50

	// MaxHappiness is the happiness ceiling for every character.
	MaxHappiness = 100

	startingPoolMax = 100
	// startingPennies matches the historical 100-gold starting purse.
	startingPennies = 100
)

// Character is the single owned aggregate for one play session. It is
// created once (or decoded from a save record) and mutated in place by
// combat, progression, shop, and property operations.
type Character struct {
	Name string

	Health pool.Pool
	Mana   pool.Pool
	Energy pool.Pool
	// LastEnergyUpdate is the regeneration watermark for the energy pool.
	LastEnergyUpdate time.Time

	Purse currency.Amount

	Experience int
	Level      int

	Strength int
	Agility  int
	Vitality int

	// Weapon and Armor are owned by reference; at most one of each.
	Weapon *item.Weapon
	Armor  *item.Armor

	Properties []*property.Property

	// Happiness is derived from owned properties; never set directly.
	Happiness    int
	MaxHappiness int
}

// New creates a fresh level-1 character with full pools and the starting
// purse.
//
// Precondition: name must be non-empty; now is the session clock reading.
// Postcondition: pools are full, Level == 1, Experience == 0, and the
// purse normalizes the historical starting gold into the pair form.
func New(name string, now time.Time) *Character {
	return &Character{
		Name:             name,
		Health:           pool.NewFull(startingPoolMax),
		Mana:             pool.NewFull(startingPoolMax),
		Energy:           pool.NewFull(startingPoolMax),
		LastEnergyUpdate: now,
		Purse:            currency.FromPennies(startingPennies),
		Level:            1,
		MaxHappiness:     MaxHappiness,
	}
}

// AttackDamage returns the damage of a regular attack:
// base + weapon damage + strength bonus.
//
// Postcondition: returns >= BaseAttackDamage.
func (c *Character) AttackDamage() int {
	weaponDamage := 0
	if c.Weapon != nil {
		weaponDamage = c.Weapon.Damage
	}
	return BaseAttackDamage + weaponDamage + c.Strength*StrengthDamageBonus
}

// SpellDamage returns the damage of a cast: 1.5x the attack damage,
// truncated toward zero.
func (c *Character) SpellDamage() int {
	return c.AttackDamage() * 3 / 2
}

// TotalDefense returns armor defense plus the vitality bonus.
//
// Postcondition: returns >= 0.
func (c *Character) TotalDefense() int {
	defense := 0
	if c.Armor != nil {
		defense = c.Armor.Defense
	}
	return defense + c.Vitality*VitalityDefenseBonus
}

// DodgeChance returns the percent chance to fully negate an incoming
// attack, derived from agility and capped.
//
// Postcondition: 0 <= result <= DodgeChanceCap.
func (c *Character) DodgeChance() int {
	chance := c.Agility * AgilityDodgeBonus
	if chance > DodgeChanceCap {
		chance = DodgeChanceCap
	}
	return chance
}

// TakeDamage applies an incoming hit. The dodge check runs before any
// defense reduction; a successful dodge negates the hit entirely.
// Otherwise the hit lands for max(1, damage - TotalDefense()).
//
// Precondition: damage >= 0; src must be non-nil.
// Postcondition: health never drops below zero; returns the damage
// actually taken and whether the hit was dodged.
func (c *Character) TakeDamage(damage int, src dice.Source) (actual int, dodged bool) {
	if dice.PercentChance(src, c.DodgeChance()) {
		return 0, true
	}
	actual = damage - c.TotalDefense()
	if actual < 1 {
		actual = 1
	}
	c.Health.Damage(actual)
	return actual, false
}

// EquipWeapon equips w and returns the replaced weapon, if any. The old
// weapon is not retained in inventory; the caller converts it to a
// trade-in refund.
func (c *Character) EquipWeapon(w *item.Weapon) (replaced *item.Weapon) {
	replaced = c.Weapon
	c.Weapon = w
	return replaced
}

// EquipArmor equips a and returns the replaced armor, if any.
func (c *Character) EquipArmor(a *item.Armor) (replaced *item.Armor) {
	replaced = c.Armor
	c.Armor = a
	return replaced
}

// HoldsProperty reports whether p is already a portfolio entry, owned
// or not. Matching is by identity; the aggregate holds properties by
// reference.
func (c *Character) HoldsProperty(p *property.Property) bool {
	for _, q := range c.Properties {
		if q == p {
			return true
		}
	}
	return false
}

// RegenerateEnergy applies lazy wall-clock regeneration up to now and
// advances the watermark by the consumed intervals only.
//
// Postcondition: returns the energy gained; repeated calls at an
// unchanged clock gain nothing.
func (c *Character) RegenerateEnergy(now time.Time) int {
	gained, newLast := pool.Regenerate(&c.Energy, c.LastEnergyUpdate, now)
	c.LastEnergyUpdate = newLast
	return gained
}

// SpendEnergy regenerates first, then spends amount if available.
//
// Precondition: amount >= 0.
// Postcondition: returns true iff the post-regeneration energy covered
// amount; on false the pool is unchanged apart from regeneration.
func (c *Character) SpendEnergy(amount int, now time.Time) bool {
	c.RegenerateEnergy(now)
	return c.Energy.Spend(amount)
}

// SpendMana spends amount if available, with no time component.
//
// Precondition: amount >= 0.
func (c *Character) SpendMana(amount int) bool {
	return c.Mana.Spend(amount)
}

// Heal restores health, clamped at the maximum.
func (c *Character) Heal(amount int) {
	c.Health.Restore(amount)
}

// RestoreMana restores mana, clamped at the maximum.
func (c *Character) RestoreMana(amount int) {
	c.Mana.Restore(amount)
}

// IsDead reports whether the character's health pool is exhausted.
func (c *Character) IsDead() bool {
	return c.Health.IsEmpty()
}
