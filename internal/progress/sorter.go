package progress

import (
	"sort"

	"github.com/alexanderramin/skatelog/internal/domain"
)

// SortForDisplay orders progress entries in place:
// 1. Status: mastered > learning > new
// 2. Total days: more first
// 3. Skill name: lexical ascending
// 4. Skill ID: lexical ascending
func SortForDisplay(entries []domain.SkillProgress) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if ra, rb := a.Status.Rank(), b.Status.Rank(); ra != rb {
			return ra < rb
		}
		if a.TotalDays != b.TotalDays {
			return a.TotalDays > b.TotalDays
		}
		if a.SkillName != b.SkillName {
			return a.SkillName < b.SkillName
		}
		return a.SkillID < b.SkillID
	})
}
