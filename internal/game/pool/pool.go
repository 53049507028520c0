// Package pool provides bounded resource pools (health, mana, energy)
// and the wall-clock energy regeneration rule.
package pool

import "time"

const (
	// RegenInterval is the elapsed time required to earn one energy tick.
	RegenInterval = 15 * time.Minute
	// RegenPerInterval is the energy gained per completed interval.
	RegenPerInterval = 5
)

// Pool is a bounded resource with a current and maximum value.
//
// Invariant: 0 <= Current <= Max at all times.
type Pool struct {
	Current int
	Max     int
}

// NewFull creates a pool filled to the given maximum.
//
// Precondition: max >= 0.
func NewFull(max int) Pool {
	return Pool{Current: max, Max: max}
}

// Spend decrements the pool by amount if enough is available.
//
// Precondition: amount >= 0.
// Postcondition: returns true iff Current >= amount held before the call;
// on false the pool is unchanged.
func (p *Pool) Spend(amount int) bool {
	if p.Current < amount {
		return false
	}
	p.Current -= amount
	return true
}

// Restore credits amount to the pool, clamped at Max.
//
// Precondition: amount >= 0.
// Postcondition: Current <= Max.
func (p *Pool) Restore(amount int) {
	p.Current += amount
	if p.Current > p.Max {
		p.Current = p.Max
	}
}

// Damage reduces the pool by amount, floored at zero.
//
// Precondition: amount >= 0.
// Postcondition: Current >= 0.
func (p *Pool) Damage(amount int) {
	p.Current -= amount
	if p.Current < 0 {
		p.Current = 0
	}
}

// Fill sets the pool to its maximum.
func (p *Pool) Fill() {
	p.Current = p.Max
}

// RaiseMax grows the maximum by delta without changing Current.
//
// Precondition: delta >= 0.
func (p *Pool) RaiseMax(delta int) {
	p.Max += delta
}

// IsFull reports whether Current == Max.
func (p *Pool) IsFull() bool { return p.Current == p.Max }

// IsEmpty reports whether the pool is exhausted.
func (p *Pool) IsEmpty() bool { return p.Current <= 0 }

// Regenerate credits the pool with energy earned since last, at
// RegenPerInterval per completed RegenInterval. Partial intervals are not
// consumed: the returned timestamp advances only by whole intervals, so
// leftover minutes keep accruing toward the next tick.
//
// Precondition: now must not be before last.
// Postcondition: gained >= 0; newLast == last + intervals*RegenInterval;
// calling again with the same now yields gained == 0. Gains clamp at Max
// but the timestamp still advances by all completed intervals.
func Regenerate(p *Pool, last, now time.Time) (gained int, newLast time.Time) {
	elapsed := now.Sub(last)
	if elapsed < RegenInterval {
		return 0, last
	}
	intervals := int(elapsed / RegenInterval)
	before := p.Current
	p.Restore(intervals * RegenPerInterval)
	return p.Current - before, last.Add(time.Duration(intervals) * RegenInterval)
}
