package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/currency"
	"github.com/cory-johannsen/highwizardry/internal/game/property"
)

// ErrAlreadyOwned is returned when buying a property already held.
var ErrAlreadyOwned = errors.New("property already owned")

// ErrNotOwned is returned for sale or upgrade attempts on an unowned
// property.
var ErrNotOwned = errors.New("property not owned")

// BuyProperty purchases p at its base price and adds it to the portfolio.
// All-or-nothing; happiness is recomputed on success. A record left in
// the portfolio by an earlier sale is re-owned in place, never appended
// a second time.
//
// Postcondition: on nil, p.Owned is true, p appears in the portfolio
// exactly once, and happiness reflects the new portfolio; on error
// nothing changed.
func (s *Session) BuyProperty(p *property.Property) error {
	if p.Owned {
		return ErrAlreadyOwned
	}
	if !s.Char.Purse.Remove(currency.FromPennies(p.BasePrice)) {
		return ErrInsufficientFunds
	}
	p.Owned = true
	p.Delist()
	if !s.Char.HoldsProperty(p) {
		s.Char.Properties = append(s.Char.Properties, p)
	}
	s.Char.RecomputeHappiness()
	s.log.Info("property purchased",
		zap.String("property", p.Name),
		zap.Int("price", p.BasePrice),
		zap.Int("happiness", s.Char.Happiness),
	)
	return nil
}

// SellProperty relinquishes p, crediting the listing price when the
// property was listed for sale, otherwise half the base price. The
// record stays in the portfolio unowned; happiness is recomputed.
//
// Postcondition: on nil, p.Owned is false, listings are cleared, and the
// proceeds were credited whole.
func (s *Session) SellProperty(p *property.Property) error {
	if !p.Owned {
		return ErrNotOwned
	}
	proceeds := p.BasePrice / 2
	if p.ForSale {
		proceeds = p.ListingPrice
	}
	p.Owned = false
	p.Delist()
	s.Char.Purse.Add(currency.FromPennies(proceeds))
	s.Char.RecomputeHappiness()
	s.log.Info("property sold",
		zap.String("property", p.Name),
		zap.Int("proceeds", proceeds),
		zap.Int("happiness", s.Char.Happiness),
	)
	return nil
}

// BuyUpgrade purchases u and installs it on p in order. All-or-nothing:
// a full upgrade capacity refunds the fee untouched.
//
// Precondition: u should come from p's catalog.
// Postcondition: on nil, the upgrade is installed last and happiness
// reflects it; on error nothing changed.
func (s *Session) BuyUpgrade(p *property.Property, u property.Upgrade) error {
	if !p.Owned {
		return ErrNotOwned
	}
	if !s.Char.Purse.Remove(currency.FromPennies(u.Price)) {
		return ErrInsufficientFunds
	}
	if err := p.InstallUpgrade(u); err != nil {
		s.Char.Purse.Add(currency.FromPennies(u.Price))
		return fmt.Errorf("installing upgrade: %w", err)
	}
	s.Char.RecomputeHappiness()
	s.log.Info("upgrade installed",
		zap.String("property", p.Name),
		zap.String("upgrade", u.Name),
		zap.Int("happiness", s.Char.Happiness),
	)
	return nil
}
