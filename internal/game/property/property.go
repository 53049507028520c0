// Package property provides owned property and upgrade records and the
// happiness arithmetic they feed.
package property

import (
	"errors"
	"fmt"
)

// Upgrade defines a single property improvement. Upgrades are immutable
// once installed; installation order is insertion order.
type Upgrade struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Price is in pennies, the base currency unit.
	Price          int `yaml:"price"`
	HappinessBoost int `yaml:"happiness_boost"`
}

// Validate checks that the Upgrade satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (u Upgrade) Validate() error {
	var errs []error
	if u.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if u.Price < 0 {
		errs = append(errs, errors.New("Price must be >= 0"))
	}
	if u.HappinessBoost < 0 {
		errs = append(errs, errors.New("HappinessBoost must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("upgrade validation failed: %v", errs)
	}
	return nil
}

// Property is a purchasable property with an ordered upgrade sequence.
//
// Invariant: the property is never listed for sale and for rent at the
// same time; len(Upgrades) never exceeds UpgradeCapacity when the
// capacity is set (> 0).
type Property struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// BasePrice is in pennies, the base currency unit.
	BasePrice int `yaml:"base_price"`
	// UpgradeCapacity caps the upgrade list length. 0 means uncapped.
	UpgradeCapacity int `yaml:"upgrade_capacity"`
	// Catalog lists the upgrades available for this property.
	Catalog []Upgrade `yaml:"upgrades"`

	// Upgrades holds installed upgrades in installation order.
	Upgrades []Upgrade `yaml:"-"`
	Owned    bool      `yaml:"-"`
	ForSale  bool      `yaml:"-"`
	ForRent  bool      `yaml:"-"`
	// ListingPrice is the asking price while ForSale or ForRent is set.
	ListingPrice int `yaml:"-"`
}

// TotalHappiness returns the sum of installed upgrades' boosts.
//
// Postcondition: returns >= 0.
func (p *Property) TotalHappiness() int {
	total := 0
	for _, u := range p.Upgrades {
		total += u.HappinessBoost
	}
	return total
}

// InstallUpgrade appends u to the installed sequence.
//
// Precondition: u must have passed Validate.
// Postcondition: returns an error and leaves the property unchanged when
// the upgrade capacity is reached; otherwise u is appended last.
func (p *Property) InstallUpgrade(u Upgrade) error {
	if p.UpgradeCapacity > 0 && len(p.Upgrades) >= p.UpgradeCapacity {
		return fmt.Errorf("property %q: upgrade capacity %d reached", p.Name, p.UpgradeCapacity)
	}
	p.Upgrades = append(p.Upgrades, u)
	return nil
}

// ListForSale marks the property for sale at price, clearing any rent
// listing.
//
// Precondition: price >= 0.
// Postcondition: ForSale is true and ForRent is false.
func (p *Property) ListForSale(price int) {
	p.ForSale = true
	p.ForRent = false
	p.ListingPrice = price
}

// ListForRent marks the property for rent at price, clearing any sale
// listing.
//
// Precondition: price >= 0.
// Postcondition: ForRent is true and ForSale is false.
func (p *Property) ListForRent(price int) {
	p.ForRent = true
	p.ForSale = false
	p.ListingPrice = price
}

// Delist removes any sale or rent listing.
//
// Postcondition: ForSale and ForRent are false and ListingPrice is 0.
func (p *Property) Delist() {
	p.ForSale = false
	p.ForRent = false
	p.ListingPrice = 0
}

// Validate checks that the Property satisfies its invariants.
//
// Postcondition: returns nil iff all fields and catalog entries are valid.
func (p *Property) Validate() error {
	if p.Name == "" {
		return errors.New("property: name must not be empty")
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("property %q: base_price must be >= 0", p.Name)
	}
	if p.UpgradeCapacity < 0 {
		return fmt.Errorf("property %q: upgrade_capacity must be >= 0", p.Name)
	}
	if p.UpgradeCapacity > 0 && len(p.Catalog) > p.UpgradeCapacity {
		return fmt.Errorf("property %q: catalog exceeds upgrade capacity %d", p.Name, p.UpgradeCapacity)
	}
	for i, u := range p.Catalog {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("property %q: upgrade[%d]: %w", p.Name, i, err)
		}
	}
	if p.ForSale && p.ForRent {
		return fmt.Errorf("property %q: listed for sale and rent simultaneously", p.Name)
	}
	return nil
}
