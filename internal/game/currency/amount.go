// Package currency provides the two-denomination money ledger used by
// shops, training, property deals, and combat rewards.
package currency

import (
	"fmt"
	"strings"
)

// PenniesPerShilling is the number of base-unit Pennies in one Shilling.
const PenniesPerShilling = 12

// Amount is a normalized two-denomination sum of money.
//
// Invariant: 0 <= Pennies < PenniesPerShilling after every operation,
// and Shillings >= 0.
type Amount struct {
	Shillings int `yaml:"shillings" json:"shillings"`
	Pennies   int `yaml:"pennies" json:"pennies"`
}

// FromPennies converts a total penny count into a normalized Amount.
//
// Precondition: total >= 0.
// Postcondition: result.TotalPennies() == total; 0 <= result.Pennies < 12.
func FromPennies(total int) Amount {
	return Amount{
		Shillings: total / PenniesPerShilling,
		Pennies:   total % PenniesPerShilling,
	}
}

// TotalPennies returns the amount expressed entirely in the base unit.
//
// Postcondition: returns Shillings*12 + Pennies.
func (a Amount) TotalPennies() int {
	return a.Shillings*PenniesPerShilling + a.Pennies
}

// Add credits delta to the amount, carrying penny overflow into shillings.
//
// Precondition: delta.Shillings >= 0 and delta.Pennies >= 0.
// Postcondition: a.TotalPennies() increases by delta.TotalPennies();
// 0 <= a.Pennies < 12.
func (a *Amount) Add(delta Amount) {
	a.Shillings += delta.Shillings
	a.Pennies += delta.Pennies
	a.Shillings += a.Pennies / PenniesPerShilling
	a.Pennies %= PenniesPerShilling
}

// Remove debits delta from the amount if the total held covers the total
// requested, borrowing from shillings where pennies would go negative.
// On insufficient funds no mutation occurs.
//
// Precondition: delta.Shillings >= 0 and delta.Pennies >= 0.
// Postcondition: returns true iff delta.TotalPennies() <= a.TotalPennies()
// held before the call; on true, the total decreases by exactly the
// requested total and 0 <= a.Pennies < 12; on false, a is unchanged.
func (a *Amount) Remove(delta Amount) bool {
	held := a.TotalPennies()
	requested := delta.TotalPennies()
	if requested > held {
		return false
	}
	*a = FromPennies(held - requested)
	return true
}

// CanAfford reports whether the amount covers the requested total without
// mutating anything.
func (a Amount) CanAfford(delta Amount) bool {
	return delta.TotalPennies() <= a.TotalPennies()
}

// IsZero reports whether the amount holds no money at all.
func (a Amount) IsZero() bool {
	return a.Shillings == 0 && a.Pennies == 0
}

// Format returns a human-readable money string, omitting a zero shilling
// tier (pennies always appear).
//
// Postcondition: returned string uses singular/plural forms.
func (a Amount) Format() string {
	var parts []string
	if a.Shillings > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", a.Shillings, plural(a.Shillings, "Shilling")))
	}
	parts = append(parts, fmt.Sprintf("%d %s", a.Pennies, plural(a.Pennies, "Penny", "Pennies")))
	return strings.Join(parts, ", ")
}

// plural returns the singular form if n == 1, otherwise the plural form.
// If no explicit plural is given, "s" is appended to the singular.
func plural(n int, singular string, pluralForm ...string) string {
	if n == 1 {
		return singular
	}
	if len(pluralForm) > 0 {
		return pluralForm[0]
	}
	return singular + "s"
}
