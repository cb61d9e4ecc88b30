// Package catalog holds the static reference list of skills that can be
// logged. The tracker reads it; nothing at runtime modifies it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/skatelog/internal/domain"
)

var ErrUnknownSkill = errors.New("unknown skill")

// Catalog is an immutable, id-indexed list of skill definitions.
type Catalog struct {
	skills []domain.SkillDefinition
	byID   map[string]int
}

// New builds a catalog, rejecting empty or duplicate ids.
func New(skills []domain.SkillDefinition) (*Catalog, error) {
	c := &Catalog{
		skills: make([]domain.SkillDefinition, 0, len(skills)),
		byID:   make(map[string]int, len(skills)),
	}
	for _, s := range skills {
		if s.ID == "" {
			return nil, fmt.Errorf("skill %q has an empty id", s.Name)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate skill id %q", s.ID)
		}
		c.byID[s.ID] = len(c.skills)
		c.skills = append(c.skills, s)
	}
	return c, nil
}

// Default returns the catalog of preset skills.
func Default() *Catalog {
	c, err := New(Presets())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid presets: %v", err))
	}
	return c
}

func (c *Catalog) Lookup(id string) (domain.SkillDefinition, error) {
	pos, ok := c.byID[id]
	if !ok {
		return domain.SkillDefinition{}, fmt.Errorf("%w: %q", ErrUnknownSkill, id)
	}
	return c.skills[pos], nil
}

// MustLookup is Lookup for ids known to be in the catalog.
func (c *Catalog) MustLookup(id string) domain.SkillDefinition {
	s, err := c.Lookup(id)
	if err != nil {
		panic(err)
	}
	return s
}

// CategoryOf reports the category of id; ok is false for ids not in the catalog.
func (c *Catalog) CategoryOf(id string) (cat domain.Category, ok bool) {
	pos, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return c.skills[pos].Category, true
}

func (c *Catalog) All() []domain.SkillDefinition {
	out := make([]domain.SkillDefinition, len(c.skills))
	copy(out, c.skills)
	return out
}

func (c *Catalog) ByCategory(cat domain.Category) []domain.SkillDefinition {
	var out []domain.SkillDefinition
	for _, s := range c.skills {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.skills)
}
