package item

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWeapons reads all *.yaml files from dir, parses each as a Weapon,
// validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Weapons or the first encountered error;
// on error, the partial result is discarded.
func LoadWeapons(dir string) ([]Weapon, error) {
	var weapons []Weapon
	err := loadCatalog(dir, func(data []byte, path string) error {
		var w Weapon
		if err := yaml.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("invalid weapon in %q: %w", path, err)
		}
		weapons = append(weapons, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return weapons, nil
}

// LoadArmors reads all *.yaml files from dir, parses each as an Armor,
// validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Armors or the first encountered error.
func LoadArmors(dir string) ([]Armor, error) {
	var armors []Armor
	err := loadCatalog(dir, func(data []byte, path string) error {
		var a Armor
		if err := yaml.Unmarshal(data, &a); err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("invalid armor in %q: %w", path, err)
		}
		armors = append(armors, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return armors, nil
}

// loadCatalog iterates the *.yaml files of dir in directory order and
// hands each file's bytes to parse.
func loadCatalog(dir string, parse func(data []byte, path string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading catalog dir %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		if err := parse(data, path); err != nil {
			return err
		}
	}
	return nil
}
