// Package item provides weapon and armor definitions and the YAML
// catalog loaders backing the shops.
package item

import (
	"errors"
	"fmt"
)

// Weapon defines a purchasable weapon. Once purchased the record is an
// immutable value; equipping replaces the prior reference.
type Weapon struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Price is in pennies, the base currency unit.
	Price  int `yaml:"price"`
	Damage int `yaml:"damage"`
	// ManaCost is the mana spent per cast. 0 means non-magical.
	ManaCost int `yaml:"mana_cost"`
}

// IsMagical reports whether the weapon can cast spells (ManaCost > 0).
func (w Weapon) IsMagical() bool {
	return w.ManaCost > 0
}

// TradeInValue returns the refund granted when the weapon is replaced:
// half the purchase price, truncated.
//
// Postcondition: returns Price / 2 >= 0.
func (w Weapon) TradeInValue() int {
	return w.Price / 2
}

// Validate checks that the Weapon satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (w Weapon) Validate() error {
	var errs []error
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.Price < 0 {
		errs = append(errs, errors.New("Price must be >= 0"))
	}
	if w.Damage < 0 {
		errs = append(errs, errors.New("Damage must be >= 0"))
	}
	if w.ManaCost < 0 {
		errs = append(errs, errors.New("ManaCost must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// Armor defines a purchasable armor piece.
type Armor struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Price is in pennies, the base currency unit.
	Price   int `yaml:"price"`
	Defense int `yaml:"defense"`
}

// TradeInValue returns the refund granted when the armor is replaced:
// half the purchase price, truncated.
//
// Postcondition: returns Price / 2 >= 0.
func (a Armor) TradeInValue() int {
	return a.Price / 2
}

// Validate checks that the Armor satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (a Armor) Validate() error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if a.Price < 0 {
		errs = append(errs, errors.New("Price must be >= 0"))
	}
	if a.Defense < 0 {
		errs = append(errs, errors.New("Defense must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}
