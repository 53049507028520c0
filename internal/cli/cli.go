// Package cli implements the interactive menu loop around a play
// session: status display, shops, combat, the gym, the property
// office, and save/load.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/character"
	"github.com/cory-johannsen/highwizardry/internal/game/combat"
	"github.com/cory-johannsen/highwizardry/internal/game/dice"
	"github.com/cory-johannsen/highwizardry/internal/game/item"
	"github.com/cory-johannsen/highwizardry/internal/game/property"
	"github.com/cory-johannsen/highwizardry/internal/game/session"
	"github.com/cory-johannsen/highwizardry/internal/storage/leaderboard"
	"github.com/cory-johannsen/highwizardry/internal/storage/savefile"
)

// Content bundles the loaded YAML catalogs.
type Content struct {
	Weapons    []item.Weapon
	Armors     []item.Armor
	Enemies    []*combat.Template
	Properties []*property.Property
}

// Scoreboard is the standings store, satisfied by both the file board
// and the Postgres repository.
type Scoreboard interface {
	Record(ctx context.Context, c *character.Character) error
	Top(ctx context.Context, limit int) ([]leaderboard.Entry, error)
}

// Game drives the interactive loop. Input is read line by line; any
// unrecognised choice reprompts without changing state.
type Game struct {
	content Content
	store   *savefile.Store
	board   Scoreboard
	src     dice.Source
	clock   func() time.Time
	log     *zap.Logger

	in  *bufio.Scanner
	out io.Writer

	sess *session.Session
}

// New wires a Game over the given input and output streams.
//
// Precondition: content, store, board, src, clock, and logger must be
// non-nil; in and out must be usable for the whole run.
func New(content Content, store *savefile.Store, board Scoreboard, src dice.Source, clock func() time.Time, logger *zap.Logger, in io.Reader, out io.Writer) *Game {
	return &Game{
		content: content,
		store:   store,
		board:   board,
		src:     src,
		clock:   clock,
		log:     logger,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run executes the outer menu and then the play loop until the player
// exits, is defeated, or input ends.
func (g *Game) Run(ctx context.Context) error {
	if !g.mainMenu() {
		return nil
	}
	g.playLoop(ctx)
	return nil
}

// mainMenu handles new game / load game / exit. Returns false when the
// player chose to exit or input ended.
func (g *Game) mainMenu() bool {
	for {
		g.printf("\n%s\n", strings.Repeat("=", 50))
		g.printf("HIGH WIZARDRY\n")
		g.printf("%s\n\n", strings.Repeat("=", 50))
		g.printf("1. New Game\n")
		g.printf("2. Load Game\n")
		g.printf("3. Exit\n")

		choice, ok := g.prompt("\nSelect option: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			name, ok := g.prompt("\nEnter your character name: ")
			if !ok {
				return false
			}
			if name == "" {
				name = "Apprentice"
			}
			g.sess = session.New(character.New(name, g.clock()), g.src, g.clock, g.log)
			g.printf("\nWelcome, %s!\n", name)
			return true
		case "2":
			c, err := g.store.Load()
			if err != nil {
				switch {
				case errors.Is(err, savefile.ErrSaveNotFound):
					g.printf("\nNo save found at %s.\n", g.store.Path())
				case errors.Is(err, savefile.ErrSaveCorrupt):
					g.printf("\nThe save file could not be read: %v\n", err)
				default:
					g.printf("\nLoading failed: %v\n", err)
				}
				continue
			}
			g.attachProperties(c)
			g.sess = session.New(c, g.src, g.clock, g.log)
			g.printf("\nWelcome back, %s!\n", c.Name)
			return true
		case "3":
			g.printf("\nGoodbye!\n")
			return false
		default:
			g.printf("\nInvalid choice.\n")
		}
	}
}

// playLoop is the per-turn menu. It returns on exit, defeat, or end of
// input.
func (g *Game) playLoop(ctx context.Context) {
	for {
		g.printStatus()
		g.printf("\n--- MAIN MENU ---\n")
		g.printf("1. Weapon Shop\n")
		g.printf("2. Armor Shop\n")
		g.printf("3. Combat (costs %d energy)\n", combat.EnergyCost)
		g.printf("4. Rest\n")
		g.printf("5. Training Gym\n")
		g.printf("6. Property Office\n")
		g.printf("7. Leaderboard\n")
		g.printf("8. Save Game\n")
		g.printf("9. Exit\n")

		choice, ok := g.prompt("\nWhat would you like to do? ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			g.weaponShop()
		case "2":
			g.armorShop()
		case "3":
			if defeated := g.combatLoop(); defeated {
				g.printf("\nYou have been defeated. Game over.\n")
				return
			}
		case "4":
			g.sess.Rest()
			g.printf("\nYou rest and recover %d health and %d mana.\n",
				session.RestHealthRestore, session.RestManaRestore)
		case "5":
			g.gym()
		case "6":
			g.propertyOffice()
		case "7":
			g.showLeaderboard(ctx)
		case "8":
			g.save(ctx)
		case "9":
			answer, ok := g.prompt("Save game before exit? (y/n): ")
			if ok && strings.EqualFold(answer, "y") {
				g.save(ctx)
			}
			g.printf("\nThanks for playing!\n")
			return
		default:
			g.printf("\nInvalid choice.\n")
		}
	}
}

func (g *Game) printStatus() {
	snap := g.sess.Status()
	if snap.EnergyRegained > 0 {
		g.printf("\nRegenerated %d energy.\n", snap.EnergyRegained)
	}

	g.printf("\n%s\n", strings.Repeat("=", 50))
	g.printf("%s - Level %d\n", snap.Name, snap.Level)
	g.printf("Health: %d/%d\n", snap.Health.Current, snap.Health.Max)
	g.printf("Mana: %d/%d\n", snap.Mana.Current, snap.Mana.Max)
	g.printf("Energy: %d/%d\n", snap.Energy.Current, snap.Energy.Max)
	g.printf("Purse: %s\n", snap.Purse.Format())
	g.printf("Experience: %d/%d\n", snap.Experience, snap.ExperienceToNext)
	g.printf("Stats: STR %d / AGI %d / VIT %d\n", snap.Strength, snap.Agility, snap.Vitality)
	g.printf("Happiness: %d/%d\n", snap.Happiness, snap.MaxHappiness)
	if snap.WeaponName != "" {
		g.printf("Weapon: %s\n", snap.WeaponName)
	} else {
		g.printf("Weapon: None (fists)\n")
	}
	if snap.ArmorName != "" {
		g.printf("Armor: %s\n", snap.ArmorName)
	} else {
		g.printf("Armor: None\n")
	}
	g.printf("%s\n", strings.Repeat("=", 50))
}

func (g *Game) save(ctx context.Context) {
	if err := g.store.Save(g.sess.Char, g.clock()); err != nil {
		g.printf("\nSaving failed: %v\n", err)
		return
	}
	if err := g.board.Record(ctx, g.sess.Char); err != nil {
		g.printf("\nLeaderboard update failed: %v\n", err)
	}
	g.printf("\nGame saved.\n")
}

// attachProperties reconciles a loaded character against the property
// catalog so that unowned catalog entries remain purchasable and owned
// ones keep their install state from the save.
func (g *Game) attachProperties(c *character.Character) {
	for _, owned := range c.Properties {
		for _, cat := range g.content.Properties {
			if cat.Name == owned.Name {
				owned.Catalog = cat.Catalog
				if owned.UpgradeCapacity == 0 {
					owned.UpgradeCapacity = cat.UpgradeCapacity
				}
			}
		}
	}
	c.RecomputeHappiness()
}

// prompt writes the prompt text and returns the next trimmed line. The
// second return is false once input is exhausted.
func (g *Game) prompt(text string) (string, bool) {
	g.printf("%s", text)
	if !g.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(g.in.Text()), true
}

func (g *Game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}
