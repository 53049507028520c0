package combat

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
	"github.com/cory-johannsen/highwizardry/internal/game/dice"
)

// EnergyCost is the energy spent to enter an encounter.
const EnergyCost = 25

// State identifies where an encounter is in its lifecycle.
// The zero value (StateRoundStart) is the initial state.
type State int

const (
	// StateRoundStart begins a round; the next call to Act opens it.
	StateRoundStart State = iota
	// StateAwaitingAction means the round is open and an action is due.
	StateAwaitingAction
	// StateEnemyTurn is the transient retaliation phase.
	StateEnemyTurn
	// StateVictory is terminal: the enemy fell and rewards were granted.
	StateVictory
	// StateDefeat is terminal and fatal: the character fell. The caller
	// must treat this as end-of-game, not a retryable error.
	StateDefeat
	// StateFled is terminal: the character escaped with no rewards.
	StateFled
)

// String returns the human-readable name of the State.
func (s State) String() string {
	switch s {
	case StateRoundStart:
		return "round_start"
	case StateAwaitingAction:
		return "awaiting_action"
	case StateEnemyTurn:
		return "enemy_turn"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateFled:
		return "fled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the encounter has ended.
func (s State) IsTerminal() bool {
	return s == StateVictory || s == StateDefeat || s == StateFled
}

// Action is what the character does with their round.
// The zero value (ActionUnknown) is intentionally invalid.
type Action int

const (
	ActionUnknown Action = iota // zero value; intentionally invalid
	ActionAttack
	ActionCast
	ActionFlee
)

// String returns the human-readable name of the Action.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionCast:
		return "cast"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// ErrNotEnoughEnergy aborts encounter entry before any enemy is created.
var ErrNotEnoughEnergy = errors.New("not enough energy for combat")

// ErrNoTemplates is returned when the encounter pool is empty.
var ErrNoTemplates = errors.New("no enemy templates available")

// ErrEncounterOver is returned when acting on a terminal encounter.
var ErrEncounterOver = errors.New("encounter already resolved")

// ErrWeaponNotMagical is returned for a cast with a non-magical weapon.
// The round is not consumed.
var ErrWeaponNotMagical = errors.New("equipped weapon cannot cast spells")

// RoundResult reports what one accepted action did.
type RoundResult struct {
	Action Action
	// DamageDealt is the damage applied to the enemy this round.
	DamageDealt int
	// CastFailed is true when a cast found insufficient mana; the round
	// is replayed and the enemy does not retaliate.
	CastFailed bool
	// EnemyDamage is the damage taken from the retaliation, post-defense.
	EnemyDamage int
	// Dodged is true when the retaliation was fully negated.
	Dodged bool
	// ExpGained and LevelsGained are set on victory.
	ExpGained    int
	LevelsGained int
	// State is the encounter state after the round resolved.
	State State
}

// Encounter is a single multi-round fight between the character and an
// ephemeral enemy. One action is accepted per round; the encounter only
// ends through its terminal states.
type Encounter struct {
	char  *character.Character
	enemy *Enemy
	src   dice.Source
	log   *zap.Logger

	state State
	round int
}

// Start spends the entry energy cost and spawns a level-scaled enemy
// picked from templates. On insufficient energy no enemy is created and
// no state is entered.
//
// Precondition: c, src, and logger must be non-nil.
// Postcondition: returns an Encounter in StateRoundStart, or
// ErrNotEnoughEnergy / ErrNoTemplates with the character unchanged apart
// from lazy energy regeneration.
func Start(c *character.Character, templates []*Template, src dice.Source, logger *zap.Logger, now time.Time) (*Encounter, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}
	if !c.SpendEnergy(EnergyCost, now) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughEnergy, EnergyCost, c.Energy.Current)
	}

	tmpl := templates[dice.Pick(src, len(templates))]
	enemy := tmpl.Spawn(c.Level)

	logger.Info("encounter started",
		zap.String("encounter_id", enemy.ID),
		zap.String("enemy", enemy.Name),
		zap.Int("enemy_health", enemy.Health),
		zap.Int("enemy_damage", enemy.Damage),
		zap.Int("character_level", c.Level),
	)

	return &Encounter{
		char:  c,
		enemy: enemy,
		src:   src,
		log:   logger,
		state: StateRoundStart,
	}, nil
}

// State returns the current encounter state.
func (e *Encounter) State() State { return e.state }

// Round returns the number of the round currently open (1-based once the
// first action is accepted).
func (e *Encounter) Round() int { return e.round }

// Enemy returns the live opponent for status display.
func (e *Encounter) Enemy() *Enemy { return e.enemy }

// Act resolves exactly one action for the round. Attack always lands for
// the attack-damage formula; Cast requires a magical weapon and enough
// mana, dealing 1.5x truncated; Flee ends the encounter immediately with
// no retaliation. After a landed action the enemy either dies (victory,
// rewards granted) or retaliates, with the dodge check evaluated before
// defense reduction.
//
// Precondition: action must not be ActionUnknown.
// Postcondition: returns ErrEncounterOver if the encounter was already
// terminal; a cast with a non-magical weapon or insufficient mana leaves
// the round open and the enemy does not retaliate.
func (e *Encounter) Act(action Action) (RoundResult, error) {
	if e.state.IsTerminal() {
		return RoundResult{State: e.state}, ErrEncounterOver
	}
	if action == ActionUnknown {
		return RoundResult{State: e.state}, fmt.Errorf("invalid action: %v", action)
	}

	if e.state == StateRoundStart {
		e.round++
		e.state = StateAwaitingAction
	}

	result := RoundResult{Action: action, State: e.state}

	switch action {
	case ActionFlee:
		e.state = StateFled
		result.State = e.state
		e.log.Info("fled from encounter",
			zap.String("encounter_id", e.enemy.ID),
			zap.Int("round", e.round),
		)
		return result, nil

	case ActionAttack:
		result.DamageDealt = e.char.AttackDamage()

	case ActionCast:
		if e.char.Weapon == nil || !e.char.Weapon.IsMagical() {
			return result, ErrWeaponNotMagical
		}
		if !e.char.SpendMana(e.char.Weapon.ManaCost) {
			// Round replays without consuming a turn.
			result.CastFailed = true
			return result, nil
		}
		result.DamageDealt = e.char.SpellDamage()
	}

	e.enemy.TakeDamage(result.DamageDealt)
	e.log.Debug("action resolved",
		zap.String("encounter_id", e.enemy.ID),
		zap.Int("round", e.round),
		zap.String("action", action.String()),
		zap.Int("damage", result.DamageDealt),
		zap.Int("enemy_health", e.enemy.Health),
	)

	if !e.enemy.IsAlive() {
		e.state = StateVictory
		result.State = e.state
		result.ExpGained = e.enemy.ExpReward
		e.char.Purse.Add(e.enemy.Reward)
		result.LevelsGained = e.char.GainExperience(e.enemy.ExpReward)
		e.log.Info("encounter won",
			zap.String("encounter_id", e.enemy.ID),
			zap.Int("round", e.round),
			zap.Int("exp_reward", e.enemy.ExpReward),
			zap.String("reward", e.enemy.Reward.Format()),
			zap.Int("levels_gained", result.LevelsGained),
		)
		return result, nil
	}

	e.state = StateEnemyTurn
	result.EnemyDamage, result.Dodged = e.char.TakeDamage(e.enemy.Damage, e.src)

	if e.char.IsDead() {
		e.state = StateDefeat
		result.State = e.state
		e.log.Info("encounter lost",
			zap.String("encounter_id", e.enemy.ID),
			zap.Int("round", e.round),
		)
		return result, nil
	}

	e.state = StateRoundStart
	result.State = e.state
	return result, nil
}
