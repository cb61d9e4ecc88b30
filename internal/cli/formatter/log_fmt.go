package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skatelog/internal/domain"
)

// FormatDayLogs renders the practice logs of one day.
func FormatDayLogs(date, today string, logs []domain.PracticeLog) string {
	title := fmt.Sprintf("%s · %s", HumanDay(date, today), date)
	if len(logs) == 0 {
		return RenderBox(title, Dim("No practice logged."))
	}

	headers := []string{"ID", "SKILL", "NOTE"}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		note := Dim("-")
		if l.Note != "" {
			note = StyleFg.Render(l.Note)
		}
		rows = append(rows, []string{TruncID(l.ID), Bold(l.SkillName), note})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(Plural(len(logs), "skill") + " practiced"))
	return RenderBox(title, b.String())
}

// FormatLogged confirms a newly recorded log.
func FormatLogged(l domain.PracticeLog) string {
	return fmt.Sprintf("%s %s on %s %s",
		StyleGreen.Render("✔ Logged"),
		Bold(l.SkillName),
		l.Date,
		TruncID(l.ID),
	)
}
