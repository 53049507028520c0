package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/currency"
)

const (
	// TrainingCost is the gym fee for a single-stat session, in pennies.
	TrainingCost = 50
	// IntensiveTrainingCost is the fee for the all-stats session.
	IntensiveTrainingCost = 200
	// intensiveBaseGain is the per-stat base gain of an intensive session.
	intensiveBaseGain = 2
)

// Stat identifies a trainable combat stat.
type Stat int

const (
	StatStrength Stat = iota
	StatAgility
	StatVitality
)

// String returns the human-readable name of the Stat.
func (st Stat) String() string {
	switch st {
	case StatStrength:
		return "strength"
	case StatAgility:
		return "agility"
	case StatVitality:
		return "vitality"
	default:
		return "unknown"
	}
}

// Train runs one gym session for a single stat. The base gain of 1 is
// multiplied by the happiness training multiplier and truncated toward
// zero before applying.
//
// Postcondition: on nil, the fee was debited whole and the stat grew by
// the multiplied gain; on ErrInsufficientFunds nothing changed.
func (s *Session) Train(st Stat) error {
	if !s.Char.Purse.Remove(currency.FromPennies(TrainingCost)) {
		return ErrInsufficientFunds
	}
	gain := s.Char.ApplyTrainingMultiplier(1)
	s.addStat(st, gain)
	s.log.Info("training complete",
		zap.String("stat", st.String()),
		zap.Int("gain", gain),
		zap.Float64("multiplier", s.Char.TrainingMultiplier()),
	)
	return nil
}

// TrainIntensive runs the all-stats gym session: base +2 to each stat,
// each gain multiplied and truncated independently.
//
// Postcondition: on nil, the fee was debited whole; on
// ErrInsufficientFunds nothing changed.
func (s *Session) TrainIntensive() error {
	if !s.Char.Purse.Remove(currency.FromPennies(IntensiveTrainingCost)) {
		return ErrInsufficientFunds
	}
	gain := s.Char.ApplyTrainingMultiplier(intensiveBaseGain)
	s.addStat(StatStrength, gain)
	s.addStat(StatAgility, gain)
	s.addStat(StatVitality, gain)
	s.log.Info("intensive training complete",
		zap.Int("gain_per_stat", gain),
		zap.Float64("multiplier", s.Char.TrainingMultiplier()),
	)
	return nil
}

func (s *Session) addStat(st Stat, delta int) {
	switch st {
	case StatStrength:
		s.Char.Strength += delta
	case StatAgility:
		s.Char.Agility += delta
	case StatVitality:
		s.Char.Vitality += delta
	default:
		panic(fmt.Sprintf("session: unknown stat %d", st))
	}
}
