// Package dice provides the randomness abstraction injected into combat
// so dodge checks and enemy selection are deterministic under test.
package dice

import (
	"crypto/rand"
	"math/big"
)

// Source is the randomness provider for combat rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, n)
// for any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// PercentChance rolls 1..100 against pct and reports success.
//
// Precondition: src must be non-nil.
// Postcondition: always false for pct <= 0; always true for pct >= 100.
func PercentChance(src Source, pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return src.Intn(100)+1 <= pct
}

// Pick returns a uniformly random index in [0, n).
//
// Precondition: src must be non-nil; n > 0.
func Pick(src Source, n int) int {
	return src.Intn(n)
}
