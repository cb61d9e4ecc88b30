package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDay labels a YYYY-MM-DD key relative to today, e.g. "Today",
// "Yesterday" or "Sat, Mar 9 2024". Unparseable keys are returned as-is.
func HumanDay(date, today string) string {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	if date == today {
		return "Today"
	}
	if t, err := time.Parse(domain.DateLayout, today); err == nil && domain.FormatDate(t.AddDate(0, 0, -1)) == date {
		return "Yesterday"
	}
	return d.Format("Mon, Jan 2 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Plural returns "1 day", "3 days".
func Plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
