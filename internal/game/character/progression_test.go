package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGainExperience_NoLevelBelowThreshold(t *testing.T) {
	c := New("Hero", sessionStart())
	levels := c.GainExperience(99)
	assert.Equal(t, 0, levels)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 99, c.Experience)
}

func TestGainExperience_SingleLevelUp(t *testing.T) {
	c := New("Hero", sessionStart())
	c.Health.Current = 40
	c.Mana.Current = 10

	levels := c.GainExperience(100)
	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 120, c.Health.Max)
	assert.Equal(t, 110, c.Mana.Max)
	assert.Equal(t, 110, c.Energy.Max)
	assert.True(t, c.Health.IsFull(), "level-up fully restores pools")
	assert.True(t, c.Mana.IsFull())
	assert.True(t, c.Energy.IsFull())
}

func TestGainExperience_LargeGrantAppliesConsecutiveLevelUps(t *testing.T) {
	c := New("Hero", sessionStart())

	// 250 at level 1 crosses the 100 and 200 cumulative thresholds.
	levels := c.GainExperience(250)
	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, c.Level)
	assert.Equal(t, 250, c.Experience)
	assert.Equal(t, 140, c.Health.Max, "two level-ups of +20 each")
	assert.Equal(t, 120, c.Mana.Max)
	assert.Equal(t, 120, c.Energy.Max)
	assert.Equal(t, 140, c.Health.Current, "pools restored to the level-3 maximums")
}

func TestGainExperience_ZeroAmountIsNoop(t *testing.T) {
	c := New("Hero", sessionStart())
	assert.Equal(t, 0, c.GainExperience(0))
	assert.Equal(t, 1, c.Level)
}

func TestProperty_GainExperience_InvariantsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New("Hero", sessionStart())
		grants := rapid.SliceOfN(rapid.IntRange(0, 5_000), 1, 10).Draw(t, "grants")

		total := 0
		for _, g := range grants {
			c.GainExperience(g)
			total += g
		}

		if c.Experience != total {
			t.Fatalf("experience %d != granted total %d", c.Experience, total)
		}
		if c.Level < 1 {
			t.Fatalf("level below 1: %d", c.Level)
		}
		// The loop must leave no earned level unapplied.
		if c.Experience >= c.ExperienceToNextLevel() {
			t.Fatalf("unapplied level-up: xp=%d threshold=%d", c.Experience, c.ExperienceToNextLevel())
		}
		if c.Health.Current > c.Health.Max || c.Mana.Current > c.Mana.Max || c.Energy.Current > c.Energy.Max {
			t.Fatalf("pool exceeds its maximum")
		}
	})
}
