package character

// RecomputeHappiness re-derives happiness from owned properties, clamped
// to the maximum. Happiness is never set directly; every portfolio
// mutation ends by calling this.
//
// Postcondition: 0 <= Happiness <= MaxHappiness.
func (c *Character) RecomputeHappiness() {
	total := 0
	for _, p := range c.Properties {
		if p.Owned {
			total += p.TotalHappiness()
		}
	}
	if total > c.MaxHappiness {
		total = c.MaxHappiness
	}
	c.Happiness = total
}

// TrainingMultiplier returns the happiness-driven multiplier applied to
// training gains: 1.0 + (happiness / max_happiness) * 0.5.
//
// Postcondition: result is in [1.0, 1.5].
func (c *Character) TrainingMultiplier() float64 {
	if c.MaxHappiness <= 0 {
		return 1.0
	}
	return 1.0 + (float64(c.Happiness)/float64(c.MaxHappiness))*0.5
}

// ApplyTrainingMultiplier scales a base training gain by the multiplier,
// truncating toward zero before it is applied.
//
// Precondition: base >= 0.
func (c *Character) ApplyTrainingMultiplier(base int) int {
	return int(float64(base) * c.TrainingMultiplier())
}
