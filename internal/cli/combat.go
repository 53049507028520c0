package cli

import (
	"errors"

	"github.com/cory-johannsen/highwizardry/internal/game/combat"
)

// combatLoop runs a full encounter. The return value reports whether
// the player was defeated.
func (g *Game) combatLoop() bool {
	enc, err := g.sess.StartCombat(g.content.Enemies)
	if err != nil {
		switch {
		case errors.Is(err, combat.ErrNotEnoughEnergy):
			g.printf("\nNot enough energy. Combat costs %d, you have %d.\n",
				combat.EnergyCost, g.sess.Char.Energy.Current)
		case errors.Is(err, combat.ErrNoTemplates):
			g.printf("\nThere is nothing to fight.\n")
		default:
			g.printf("\nCombat could not start: %v\n", err)
		}
		return false
	}

	enemy := enc.Enemy()
	g.printf("\nA %s appears! (%d HP)\n", enemy.Name, enemy.MaxHealth)

	for {
		// A round opens when its action is accepted, so a fresh round
		// displays as the one about to be played.
		round := enc.Round()
		if enc.State() == combat.StateRoundStart {
			round++
		}

		g.printf("\n--- ROUND %d ---\n", round)
		g.printf("%s: %d/%d HP\n", enemy.Name, enemy.Health, enemy.MaxHealth)
		g.printf("You: %d/%d HP, %d/%d mana\n",
			g.sess.Char.Health.Current, g.sess.Char.Health.Max,
			g.sess.Char.Mana.Current, g.sess.Char.Mana.Max)
		g.printf("1. Attack\n")
		g.printf("2. Cast Spell\n")
		g.printf("3. Flee\n")

		choice, ok := g.prompt("\nYour action: ")
		if !ok {
			return false
		}

		var action combat.Action
		switch choice {
		case "1":
			action = combat.ActionAttack
		case "2":
			action = combat.ActionCast
		case "3":
			action = combat.ActionFlee
		default:
			g.printf("\nInvalid choice.\n")
			continue
		}

		result, err := enc.Act(action)
		if err != nil {
			if errors.Is(err, combat.ErrWeaponNotMagical) {
				g.printf("\nYour weapon cannot channel spells.\n")
				continue
			}
			g.printf("\nCombat error: %v\n", err)
			continue
		}

		g.reportRound(enemy.Name, result)

		switch result.State {
		case combat.StateVictory:
			g.printf("\nYou defeated the %s!\n", enemy.Name)
			g.printf("Gained %d experience and %s.\n", result.ExpGained, enemy.Reward.Format())
			if result.LevelsGained > 0 {
				g.printf("LEVEL UP! You are now level %d.\n", g.sess.Char.Level)
			}
			return false
		case combat.StateDefeat:
			return true
		case combat.StateFled:
			g.printf("\nYou fled from the %s.\n", enemy.Name)
			return false
		}
	}
}

func (g *Game) reportRound(enemyName string, result combat.RoundResult) {
	switch result.Action {
	case combat.ActionAttack:
		g.printf("\nYou strike the %s for %d damage.\n", enemyName, result.DamageDealt)
	case combat.ActionCast:
		if result.CastFailed {
			g.printf("\nNot enough mana to cast.\n")
			return
		}
		g.printf("\nYour spell sears the %s for %d damage.\n", enemyName, result.DamageDealt)
	case combat.ActionFlee:
		return
	}

	if result.State == combat.StateVictory {
		return
	}
	if result.Dodged {
		g.printf("The %s attacks, but you dodge!\n", enemyName)
	} else if result.EnemyDamage > 0 {
		g.printf("The %s hits you for %d damage.\n", enemyName, result.EnemyDamage)
	}
}
