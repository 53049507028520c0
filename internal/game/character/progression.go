package character

const (
	// ExperienceThresholdStep scales the next-level threshold: the
	// cumulative experience required to leave level L is L * 100.
	ExperienceThresholdStep = 100

	// Per-level growth of each pool maximum.
	HealthPerLevel = 20
	ManaPerLevel   = 10
	EnergyPerLevel = 10
)

// ExperienceToNextLevel returns the cumulative experience required to
// reach the next level.
//
// Postcondition: returns Level * ExperienceThresholdStep.
func (c *Character) ExperienceToNextLevel() int {
	return c.Level * ExperienceThresholdStep
}

// GainExperience credits amount and applies every level-up it earns.
// Thresholds are cumulative: the character leaves level L once total
// experience reaches L*100, so a single large grant may advance several
// levels, re-checking the higher threshold each time. Each level-up
// raises every pool maximum and restores all pools to the new maximums.
//
// Precondition: amount >= 0.
// Postcondition: Experience increases by exactly amount; returns the
// number of levels gained; after any level-up all pools are full.
func (c *Character) GainExperience(amount int) (levels int) {
	c.Experience += amount
	for c.Experience >= c.ExperienceToNextLevel() {
		c.levelUp()
		levels++
	}
	return levels
}

// levelUp advances one level, grows every pool maximum, and fully
// restores all pools.
func (c *Character) levelUp() {
	c.Level++
	c.Health.RaiseMax(HealthPerLevel)
	c.Mana.RaiseMax(ManaPerLevel)
	c.Energy.RaiseMax(EnergyPerLevel)
	c.Health.Fill()
	c.Mana.Fill()
	c.Energy.Fill()
}
