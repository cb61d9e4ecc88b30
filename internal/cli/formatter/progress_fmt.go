package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skatelog/internal/domain"
)

// FormatProgress renders practiced skills in the order given.
func FormatProgress(entries []domain.SkillProgress, today string) string {
	if len(entries) == 0 {
		return RenderBox("Progress", Dim("Nothing practiced yet. Log a skill with: skatelog log SKILL_ID"))
	}

	headers := []string{"SKILL", "STATUS", "DAYS", "FIRST", "LAST"}
	rows := make([][]string, 0, len(entries))
	counts := map[domain.SkillStatus]int{}
	for _, p := range entries {
		counts[p.Status]++
		rows = append(rows, []string{
			Bold(p.SkillName),
			StatusPill(p.Status),
			fmt.Sprintf("%d", p.TotalDays),
			Dim(p.FirstPracticeDate),
			HumanDay(p.LastPracticeDate, today),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 2))
	b.WriteString("\n")
	b.WriteString(statusSummary(counts))
	return RenderBox("Progress", b.String())
}
