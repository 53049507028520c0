package session

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/currency"
	"github.com/cory-johannsen/highwizardry/internal/game/item"
)

// BuyWeapon purchases and equips w. The purchase is all-or-nothing: on
// insufficient funds nothing changes. A replaced weapon is traded in for
// half its price, credited after the purchase.
//
// Precondition: w must have passed Validate.
// Postcondition: on nil, w is equipped and the purse changed by exactly
// trade-in minus price; on ErrInsufficientFunds, nothing changed.
func (s *Session) BuyWeapon(w item.Weapon) error {
	if !s.Char.Purse.Remove(currency.FromPennies(w.Price)) {
		return ErrInsufficientFunds
	}
	replaced := s.Char.EquipWeapon(&w)
	refund := 0
	if replaced != nil {
		refund = replaced.TradeInValue()
		s.Char.Purse.Add(currency.FromPennies(refund))
	}
	s.log.Info("weapon purchased",
		zap.String("weapon", w.Name),
		zap.Int("price", w.Price),
		zap.Int("trade_in", refund),
	)
	return nil
}

// BuyArmor purchases and equips a, refunding any replaced armor at half
// price. Same all-or-nothing contract as BuyWeapon.
func (s *Session) BuyArmor(a item.Armor) error {
	if !s.Char.Purse.Remove(currency.FromPennies(a.Price)) {
		return ErrInsufficientFunds
	}
	replaced := s.Char.EquipArmor(&a)
	refund := 0
	if replaced != nil {
		refund = replaced.TradeInValue()
		s.Char.Purse.Add(currency.FromPennies(refund))
	}
	s.log.Info("armor purchased",
		zap.String("armor", a.Name),
		zap.Int("price", a.Price),
		zap.Int("trade_in", refund),
	)
	return nil
}
