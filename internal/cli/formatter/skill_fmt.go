package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/progress"
)

// FormatSkillRows renders the catalog joined with progress.
func FormatSkillRows(title string, rows []progress.SkillRow, today string) string {
	if len(rows) == 0 {
		return RenderBox(title, Dim("No skills."))
	}

	headers := []string{"ID", "SKILL", "CATEGORY", "STATUS", "DAYS", "LAST"}
	table := make([][]string, 0, len(rows))
	counts := map[domain.SkillStatus]int{}
	for _, r := range rows {
		counts[r.Progress.Status]++
		days, last := Dim("-"), Dim("-")
		if r.Practiced {
			days = fmt.Sprintf("%d", r.Progress.TotalDays)
			last = HumanDay(r.Progress.LastPracticeDate, today)
		}
		name := Bold(r.Skill.Name)
		if r.Skill.HasVariants() {
			name += Dim(" [" + strings.Join(r.Skill.Variants, "/") + "]")
		}
		table = append(table, []string{
			Dim(r.Skill.ID),
			name,
			CategoryBadge(r.Skill.Category),
			StatusPill(r.Progress.Status),
			days,
			last,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, table, 4))
	b.WriteString("\n")
	b.WriteString(statusSummary(counts))
	return RenderBox(title, b.String())
}

func statusSummary(counts map[domain.SkillStatus]int) string {
	return fmt.Sprintf("%s, %s, %s",
		StyleGreen.Render(fmt.Sprintf("%d Mastered", counts[domain.StatusMastered])),
		StyleYellow.Render(fmt.Sprintf("%d Learning", counts[domain.StatusLearning])),
		StyleBlue.Render(fmt.Sprintf("%d New", counts[domain.StatusNew])),
	)
}
