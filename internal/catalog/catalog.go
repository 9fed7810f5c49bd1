// Package catalog holds the monsters a player can fight and buy.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed monsters.yaml
var defaultMonsters []byte

// ErrMonsterNotFound is returned for an unknown monster ID
var ErrMonsterNotFound = errors.New("monster not found")

type file struct {
	Monsters []models.Monster `yaml:"monsters"`
}

// Catalog is an ordered, read-only list of monsters
type Catalog struct {
	monsters []models.Monster
	byID     map[string]models.Monster
}

// Default returns the catalog shipped with the binary
func Default() (*Catalog, error) {
	return Parse(defaultMonsters)
}

// Parse builds a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse monster catalog: %w", err)
	}

	c := &Catalog{
		monsters: make([]models.Monster, 0, len(f.Monsters)),
		byID:     make(map[string]models.Monster, len(f.Monsters)),
	}

	for _, m := range f.Monsters {
		if m.ID == "" {
			return nil, errors.New("monster id cannot be empty")
		}
		if m.Cost < 0 {
			return nil, fmt.Errorf("monster %s has negative cost", m.ID)
		}
		if _, exists := c.byID[m.ID]; exists {
			return nil, fmt.Errorf("duplicate monster %s", m.ID)
		}
		c.monsters = append(c.monsters, m)
		c.byID[m.ID] = m
	}

	for _, id := range models.DefaultUnlockedMonsters {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("default monster %s missing from catalog", id)
		}
	}

	return c, nil
}

// List returns every monster in catalog order
func (c *Catalog) List() []models.Monster {
	return append([]models.Monster{}, c.monsters...)
}

// Get returns a monster by ID
func (c *Catalog) Get(id string) (models.Monster, error) {
	m, ok := c.byID[id]
	if !ok {
		return models.Monster{}, fmt.Errorf("%w: %s", ErrMonsterNotFound, id)
	}
	return m, nil
}

// Name returns the display name of a monster, falling back to its ID
func (c *Catalog) Name(id string) string {
	if m, ok := c.byID[id]; ok {
		return m.Name
	}
	return id
}
