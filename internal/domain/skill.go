package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrVariantRequired = errors.New("variant required")
	ErrUnknownVariant  = errors.New("unknown variant")
)

// SkillDefinition is a catalog entry. Skills with Variants require one of
// them to be chosen whenever the skill is logged.
type SkillDefinition struct {
	ID       string
	Name     string
	Category Category
	Variants []string
}

func (s SkillDefinition) HasVariants() bool {
	return len(s.Variants) > 0
}

func (s SkillDefinition) HasVariant(v string) bool {
	return slices.Contains(s.Variants, v)
}

// CheckVariant validates a variant choice. Skills with variants need one of
// them; skills without variants accept only the empty string.
func (s SkillDefinition) CheckVariant(v string) error {
	switch {
	case s.HasVariants() && v == "":
		return fmt.Errorf("%w: %s has %s", ErrVariantRequired, s.ID, strings.Join(s.Variants, ", "))
	case s.HasVariants() && !s.HasVariant(v):
		return fmt.Errorf("%w: %q for %s", ErrUnknownVariant, v, s.ID)
	case !s.HasVariants() && v != "":
		return fmt.Errorf("%w: %s has no variants", ErrUnknownVariant, s.ID)
	}
	return nil
}

// DisplayName is the denormalized name stored on a log, e.g. "Salchow (Double)".
func (s SkillDefinition) DisplayName(variant string) string {
	if variant == "" {
		return s.Name
	}
	return s.Name + " (" + variant + ")"
}

// SkillProgress is the per-skill summary derived from logs and the status
// overlay. It is never persisted.
type SkillProgress struct {
	SkillID           string
	SkillName         string
	Status            SkillStatus
	TotalDays         int
	FirstPracticeDate string
	LastPracticeDate  string
}
