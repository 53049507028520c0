// Package combat provides the encounter state machine and the
// level-scaled enemy templates it draws opponents from.
package combat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/highwizardry/internal/game/currency"
)

// Template defines a reusable enemy archetype loaded from YAML. Health
// and damage scale with the challenger's level at spawn time.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// BaseHealth is the health at level zero; each challenger level adds
	// HealthScale more.
	BaseHealth  int `yaml:"base_health"`
	HealthScale int `yaml:"health_scale"`
	// BaseDamage is the damage at level zero; each challenger level adds one.
	BaseDamage int `yaml:"base_damage"`
	ExpReward  int `yaml:"exp_reward"`
	// Reward is the currency granted on victory.
	Reward currency.Amount `yaml:"reward"`
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff Name is non-empty, BaseHealth >= 1, and
// all scaling and reward values are non-negative; returns an error on the
// first violation otherwise.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("enemy template: name must not be empty")
	}
	if t.BaseHealth < 1 {
		return fmt.Errorf("enemy template %q: base_health must be >= 1", t.Name)
	}
	if t.HealthScale < 0 {
		return fmt.Errorf("enemy template %q: health_scale must be >= 0", t.Name)
	}
	if t.BaseDamage < 0 {
		return fmt.Errorf("enemy template %q: base_damage must be >= 0", t.Name)
	}
	if t.ExpReward < 0 {
		return fmt.Errorf("enemy template %q: exp_reward must be >= 0", t.Name)
	}
	if t.Reward.Shillings < 0 || t.Reward.Pennies < 0 {
		return fmt.Errorf("enemy template %q: reward must be non-negative", t.Name)
	}
	return nil
}

// Enemy is a live opponent scoped to a single encounter. It is never
// persisted.
type Enemy struct {
	// ID uniquely identifies this spawn within logs.
	ID        string
	Name      string
	Health    int
	MaxHealth int
	Damage    int
	ExpReward int
	Reward    currency.Amount
}

// Spawn instantiates a live Enemy scaled to the challenger's level:
// health = base + level*health_scale, damage = base + level.
//
// Precondition: t must have passed Validate; level >= 1.
// Postcondition: Health == MaxHealth; Damage >= BaseDamage.
func (t *Template) Spawn(level int) *Enemy {
	health := t.BaseHealth + level*t.HealthScale
	return &Enemy{
		ID:        uuid.New().String(),
		Name:      t.Name,
		Health:    health,
		MaxHealth: health,
		Damage:    t.BaseDamage + level,
		ExpReward: t.ExpReward,
		Reward:    t.Reward,
	}
}

// TakeDamage reduces the enemy's health, floored at zero.
//
// Precondition: damage >= 0.
// Postcondition: Health >= 0.
func (e *Enemy) TakeDamage(damage int) {
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
}

// IsAlive reports whether the enemy still has health.
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed
// enemy templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading enemy dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		var tmpl Template
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, &tmpl)
	}
	return templates, nil
}
