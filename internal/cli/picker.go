package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skatelog/internal/catalog"
	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/charmbracelet/huh"
)

// PickResult is the outcome of an interactive skill choice.
type PickResult struct {
	SkillID string
	Variant string
	Note    string
}

// SkillPicker asks the user which skill to log.
type SkillPicker func(ctx context.Context, c *catalog.Catalog, statuses func(string) (domain.SkillStatus, bool)) (PickResult, error)

// huhSkillPicker walks category, skill, variant and note as separate forms so
// each list can depend on the previous answer.
func huhSkillPicker(ctx context.Context, c *catalog.Catalog, statuses func(string) (domain.SkillStatus, bool)) (PickResult, error) {
	var res PickResult

	var cat domain.Category
	catOptions := make([]huh.Option[domain.Category], 0, len(domain.Categories()))
	for _, cg := range domain.Categories() {
		label := fmt.Sprintf("%s (%d)", cg.Label(), len(c.ByCategory(cg)))
		catOptions = append(catOptions, huh.NewOption(label, cg))
	}
	if err := themedForm(huh.NewSelect[domain.Category]().
		Title("Category").
		Options(catOptions...).
		Value(&cat)).RunWithContext(ctx); err != nil {
		return res, err
	}

	skills := c.ByCategory(cat)
	skillOptions := make([]huh.Option[string], 0, len(skills))
	for _, s := range skills {
		label := s.Name
		if st, ok := statuses(s.ID); ok {
			label = fmt.Sprintf("%s · %s", s.Name, st)
		}
		skillOptions = append(skillOptions, huh.NewOption(label, s.ID))
	}
	if err := themedForm(huh.NewSelect[string]().
		Title("Skill").
		Options(skillOptions...).
		Height(12).
		Value(&res.SkillID)).RunWithContext(ctx); err != nil {
		return res, err
	}

	skill, err := c.Lookup(res.SkillID)
	if err != nil {
		return res, err
	}
	if skill.HasVariants() {
		if err := themedForm(huh.NewSelect[string]().
			Title(skill.Name).
			Options(huh.NewOptions(skill.Variants...)...).
			Value(&res.Variant)).RunWithContext(ctx); err != nil {
			return res, err
		}
	}

	if err := themedForm(huh.NewInput().
		Title("Note (optional)").
		Value(&res.Note)).RunWithContext(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func themedForm(field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).WithTheme(skatelogHuhTheme()).WithShowHelp(false)
}
