package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skatelog/internal/progress"
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// FormatCalendar renders a month as a heat grid, one cell per day shaded by
// the number of logs.
func FormatCalendar(m progress.Month, today string) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(strings.Join(weekdayHeader, " ")))
	b.WriteString("\n")

	col := 0
	for ; col < m.Offset; col++ {
		b.WriteString("   ")
	}
	total, active := 0, 0
	for _, d := range m.Days {
		cell := HeatCell(progress.HeatLevel(d.Count), fmt.Sprintf("%2d", d.Day))
		if d.Date == today {
			cell = StyleBold.Underline(true).Render(fmt.Sprintf("%2d", d.Day))
		}
		b.WriteString(cell)
		total += d.Count
		if d.Count > 0 {
			active++
		}
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim("less "))
	for lvl := 0; lvl <= 4; lvl++ {
		b.WriteString(HeatCell(lvl, "  "))
		b.WriteString(" ")
	}
	b.WriteString(Dim("more"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s across %s", Plural(total, "log"), Plural(active, "day")))

	title := fmt.Sprintf("%s %d", m.Month, m.Year)
	return RenderBox(title, b.String())
}
