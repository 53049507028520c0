package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/game/combat"
	"github.com/cory-johannsen/highwizardry/internal/game/currency"
	"github.com/cory-johannsen/highwizardry/internal/game/item"
	"github.com/cory-johannsen/highwizardry/internal/game/property"
	"github.com/cory-johannsen/highwizardry/internal/storage/leaderboard"
	"github.com/cory-johannsen/highwizardry/internal/storage/savefile"
)

var cliStart = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

// scriptedDice returns each value in order, then repeats the last.
type scriptedDice struct {
	rolls []int
	i     int
}

func (s *scriptedDice) Intn(n int) int {
	v := s.rolls[s.i]
	if s.i < len(s.rolls)-1 {
		s.i++
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func testContent() Content {
	return Content{
		Weapons: []item.Weapon{
			{Name: "Wooden Sword", Description: "A basic wooden sword", Price: 50, Damage: 5},
		},
		Armors: []item.Armor{
			{Name: "Leather Armor", Description: "Basic leather protection", Price: 60, Defense: 5},
		},
		Enemies: []*combat.Template{
			{Name: "Goblin", Description: "A sniveling cave goblin", BaseHealth: 30, HealthScale: 10,
				BaseDamage: 8, ExpReward: 20, Reward: currency.Amount{Shillings: 2, Pennies: 6}},
		},
		Properties: []*property.Property{
			{Name: "Harbor Cottage", Description: "A small cottage", BasePrice: 20, UpgradeCapacity: 1,
				Catalog: []property.Upgrade{{Name: "Flower Boxes", Description: "Window boxes", Price: 10, HappinessBoost: 10}}},
		},
	}
}

func newTestGame(t *testing.T, input string, rolls ...int) (*Game, *bytes.Buffer, *savefile.Store) {
	t.Helper()
	if len(rolls) == 0 {
		rolls = []int{99}
	}
	dir := t.TempDir()
	store := savefile.NewStore(filepath.Join(dir, "save.json"), zap.NewNop())
	board := leaderboard.NewFileBoard(filepath.Join(dir, "board.json"), zap.NewNop())

	var out bytes.Buffer
	g := New(testContent(), store, board, &scriptedDice{rolls: rolls},
		func() time.Time { return cliStart }, zap.NewNop(), strings.NewReader(input), &out)
	return g, &out, store
}

func TestMainMenuExit(t *testing.T) {
	g, out, _ := newTestGame(t, "3\n")
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMainMenuInvalidChoiceReprompts(t *testing.T) {
	g, out, _ := newTestGame(t, "zzz\n3\n")
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "Invalid choice.")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMainMenuLoadWithoutSave(t *testing.T) {
	g, out, _ := newTestGame(t, "2\n3\n")
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "No save found")
}

func TestNewGameStatusAndExit(t *testing.T) {
	g, out, _ := newTestGame(t, "1\nErasmus\n9\nn\n")
	require.NoError(t, g.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Welcome, Erasmus!")
	assert.Contains(t, s, "Erasmus - Level 1")
	assert.Contains(t, s, "Health: 100/100")
	assert.Contains(t, s, "Thanks for playing!")
}

func TestBuyWeaponThenExit(t *testing.T) {
	g, out, _ := newTestGame(t, "1\nErasmus\n1\n1\n0\n9\nn\n")
	require.NoError(t, g.Run(context.Background()))

	assert.Contains(t, out.String(), "You bought the Wooden Sword.")
	assert.Equal(t, "Wooden Sword", g.sess.Char.Weapon.Name)
	// 100 starting pennies - 50 for the sword
	assert.Equal(t, currency.FromPennies(50), g.sess.Char.Purse)
}

func TestRestReportsRecovery(t *testing.T) {
	g, out, _ := newTestGame(t, "1\nErasmus\n4\n9\nn\n")
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "recover 50 health and 50 mana")
}

func TestSaveOnExitWritesSaveAndLeaderboard(t *testing.T) {
	g, out, store := newTestGame(t, "1\nErasmus\n9\ny\n")
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "Game saved.")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Erasmus", loaded.Name)

	entries, err := g.board.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Erasmus", entries[0].Name)
}

func TestLeaderboardEmpty(t *testing.T) {
	g, out, _ := newTestGame(t, "1\nErasmus\n7\n9\nn\n")
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "Leaderboard is empty")
}

func TestCombatVictory(t *testing.T) {
	// Level-1 goblin: 40 HP, 9 damage. Bare-handed attacks deal 10, so
	// four attacks win. Dice rolls keep the dodge check irrelevant (AGI 0).
	input := "1\nErasmus\n3\n1\n1\n1\n1\n9\nn\n"
	g, out, _ := newTestGame(t, input, 0)
	require.NoError(t, g.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "A Goblin appears!")
	assert.Contains(t, s, "You defeated the Goblin!")
	assert.Contains(t, s, "Gained 20 experience")
	// Entry cost spent, rewards banked.
	assert.Equal(t, 75, g.sess.Char.Energy.Current)
	assert.Equal(t, 20, g.sess.Char.Experience)
	assert.Equal(t, currency.FromPennies(130), g.sess.Char.Purse)
}

func TestCombatFlee(t *testing.T) {
	g, out, _ := newTestGame(t, "1\nErasmus\n3\n3\n9\nn\n", 0)
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "You fled from the Goblin.")
}

func TestCombatCastWithoutMagicalWeaponReprompts(t *testing.T) {
	g, out, _ := newTestGame(t, "1\nErasmus\n3\n2\n3\n9\nn\n", 0)
	require.NoError(t, g.Run(context.Background()))
	assert.Contains(t, out.String(), "Your weapon cannot channel spells.")
	assert.Contains(t, out.String(), "You fled from the Goblin.")
}

func TestCombatInsufficientEnergy(t *testing.T) {
	// Four enter-and-flee trips drain the full 100 energy; the fifth
	// entry attempt must be refused. The clock is frozen, so no
	// regeneration interferes.
	input := "1\nErasmus\n" + strings.Repeat("3\n3\n", 4) + "3\n9\nn\n"
	g, out, _ := newTestGame(t, input, 0)
	require.NoError(t, g.Run(context.Background()))

	assert.Contains(t, out.String(), "Not enough energy.")
	assert.Equal(t, 0, g.sess.Char.Energy.Current)
}

func TestPropertyBuyAndUpgrade(t *testing.T) {
	// Buy the cottage (20), then install Flower Boxes (10).
	input := "1\nErasmus\n6\n1\n1\n6\n1\n2\n1\n0\n0\n0\n9\nn\n"
	g, out, _ := newTestGame(t, input)
	require.NoError(t, g.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "You now own Harbor Cottage.")
	assert.Contains(t, s, "Installed Flower Boxes.")
	assert.Equal(t, 10, g.sess.Char.Happiness)
	assert.Equal(t, currency.FromPennies(70), g.sess.Char.Purse)
}

func TestPropertyListForSaleThenSellAtListingPrice(t *testing.T) {
	// Buy the cottage (20), list it at 30, then the sale pays the
	// listing price rather than the half-price fallback.
	input := "1\nErasmus\n6\n1\n1\n1\n3\n30\n1\n0\n9\nn\n"
	g, out, _ := newTestGame(t, input)
	require.NoError(t, g.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "listed for sale at 30 pennies")
	assert.Contains(t, s, "Sold Harbor Cottage.")
	assert.Equal(t, currency.FromPennies(110), g.sess.Char.Purse)
	require.Len(t, g.sess.Char.Properties, 1)
	assert.False(t, g.sess.Char.Properties[0].Owned)
	assert.Equal(t, 0, g.sess.Char.Happiness)
}

func TestGymTraining(t *testing.T) {
	g, out, _ := newTestGame(t, "1\nErasmus\n5\n1\n0\n9\nn\n")
	require.NoError(t, g.Run(context.Background()))

	assert.Contains(t, out.String(), "Training complete.")
	assert.Equal(t, 1, g.sess.Char.Strength)
	assert.Equal(t, currency.FromPennies(50), g.sess.Char.Purse)
}
