package progress

import "github.com/alexanderramin/skatelog/internal/domain"

// SkillRow joins a catalog entry with its progress. Practiced is false for
// skills with no logs; their Progress then carries zero days and the status
// from the overlay, or new.
type SkillRow struct {
	Skill     domain.SkillDefinition
	Progress  domain.SkillProgress
	Practiced bool
}

// CatalogView returns one row per catalog skill, in catalog order. Progress
// entries for ids outside the catalog are ignored.
func CatalogView(skills []domain.SkillDefinition, computed []domain.SkillProgress, overlay StatusLookup) []SkillRow {
	byID := make(map[string]domain.SkillProgress, len(computed))
	for _, p := range computed {
		byID[p.SkillID] = p
	}

	rows := make([]SkillRow, 0, len(skills))
	for _, s := range skills {
		if p, ok := byID[s.ID]; ok {
			rows = append(rows, SkillRow{Skill: s, Progress: p, Practiced: true})
			continue
		}

		status := domain.StatusNew
		if overlay != nil {
			if st, ok := overlay.Get(s.ID); ok {
				status = st
			}
		}
		rows = append(rows, SkillRow{
			Skill: s,
			Progress: domain.SkillProgress{
				SkillID:   s.ID,
				SkillName: s.Name,
				Status:    status,
			},
		})
	}
	return rows
}

// SortRows applies the SortForDisplay ordering to catalog rows.
func SortRows(rows []SkillRow) {
	entries := make([]domain.SkillProgress, len(rows))
	index := make(map[string]SkillRow, len(rows))
	for i, r := range rows {
		entries[i] = r.Progress
		index[r.Skill.ID] = r
	}
	SortForDisplay(entries)
	for i, e := range entries {
		rows[i] = index[e.SkillID]
	}
}
