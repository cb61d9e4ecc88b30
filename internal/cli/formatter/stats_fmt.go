package formatter

import (
	"strings"

	"github.com/alexanderramin/skatelog/internal/progress"
)

const (
	statsBarWidth  = 24
	statsTopSkills = 10
	statsTimeline  = 14
)

// Stats is the input to FormatStats.
type Stats struct {
	Daily      []progress.DayCount
	Skills     []progress.NameCount
	Categories []progress.CategoryCount
	TotalLogs  int
}

// FormatStats renders the recent timeline, most practiced skills and the
// category split.
func FormatStats(s Stats, today string) string {
	if s.TotalLogs == 0 {
		return RenderBox("Stats", Dim("No practice logged yet."))
	}

	var b strings.Builder

	b.WriteString(Header("Recent days"))
	b.WriteString("\n")
	daily := s.Daily
	if len(daily) > statsTimeline {
		daily = daily[len(daily)-statsTimeline:]
	}
	maxDay := 0
	for _, d := range daily {
		maxDay = max(maxDay, d.Count)
	}
	rows := make([][]string, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, []string{Dim(d.Date), RenderBar(d.Count, maxDay, statsBarWidth, StyleBlue.Render)})
	}
	b.WriteString(renderPlain(rows))

	b.WriteString("\n")
	b.WriteString(Header("Most practiced"))
	b.WriteString("\n")
	skills := s.Skills
	if len(skills) > statsTopSkills {
		skills = skills[:statsTopSkills]
	}
	maxSkill := 0
	if len(skills) > 0 {
		maxSkill = skills[0].Count
	}
	rows = rows[:0]
	for _, sk := range skills {
		rows = append(rows, []string{Bold(sk.Name), RenderBar(sk.Count, maxSkill, statsBarWidth, StyleGreen.Render)})
	}
	b.WriteString(renderPlain(rows))

	b.WriteString("\n")
	b.WriteString(Header("By category"))
	b.WriteString("\n")
	rows = rows[:0]
	for _, c := range s.Categories {
		rows = append(rows, []string{CategoryBadge(c.Category), RenderShare(c.Count, s.TotalLogs, statsBarWidth)})
	}
	b.WriteString(renderPlain(rows))

	return RenderBox("Stats · "+today, b.String())
}

// renderPlain is RenderTable without the header block.
func renderPlain(rows [][]string) string {
	if len(rows) == 0 {
		return Dim("(none)") + "\n"
	}
	table := RenderTable(make([]string, len(rows[0])), rows)
	// Drop the empty header line and the separator.
	lines := strings.SplitN(table, "\n", 3)
	if len(lines) < 3 {
		return table
	}
	return lines[2]
}
