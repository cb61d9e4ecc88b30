package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a horizontal bar scaled so that max fills width cells,
// followed by the raw count: "██████░░░░ 12".
func RenderBar(count, max, width int, style func(...string) string) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 && count > 0 {
		filled = count * width / max
		if filled == 0 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled)
	if style != nil {
		bar = style(bar)
	}
	return fmt.Sprintf("%s%s %d", bar, StyleDim.Render(strings.Repeat(emptyBlock, width-filled)), count)
}

// RenderShare renders count as a percentage of total: "[████░░░░]  45%".
func RenderShare(count, total, width int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(count) / float64(total)
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", StylePurple.Render(bar), pct*100)
}
