package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus   = errors.New("invalid skill status")
	ErrInvalidCategory = errors.New("invalid skill category")
)

type SkillStatus string

const (
	StatusNew      SkillStatus = "new"
	StatusLearning SkillStatus = "learning"
	StatusMastered SkillStatus = "mastered"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"new": true, "learning": true, "mastered": true,
}

// ParseStatus converts s into a SkillStatus, rejecting anything outside
// new/learning/mastered.
func ParseStatus(s string) (SkillStatus, error) {
	if !ValidStatuses[s] {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return SkillStatus(s), nil
}

// CoerceStatus is the lenient form of ParseStatus used when reading stored
// state: unknown values become StatusNew.
func CoerceStatus(s string) SkillStatus {
	if ValidStatuses[s] {
		return SkillStatus(s)
	}
	return StatusNew
}

// Rank orders statuses for display: mastered first, then learning, then new.
func (s SkillStatus) Rank() int {
	switch s {
	case StatusMastered:
		return 0
	case StatusLearning:
		return 1
	default:
		return 2
	}
}

type Category string

const (
	CategoryJumps      Category = "jumps"
	CategorySpins      Category = "spins"
	CategoryFootwork   Category = "footwork"
	CategoryFieldMoves Category = "field-moves"
)

// Categories returns the categories in catalog order.
func Categories() []Category {
	return []Category{CategoryJumps, CategorySpins, CategoryFootwork, CategoryFieldMoves}
}

// ParseCategory converts s into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryJumps:
		return "Jumps"
	case CategorySpins:
		return "Spins"
	case CategoryFootwork:
		return "Footwork"
	case CategoryFieldMoves:
		return "Field Moves"
	default:
		return string(c)
	}
}
