package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Calendar heat shades, indexed by progress.HeatLevel.
var heatColors = []lipgloss.Color{
	"#3c3836",
	"#5a6b4f",
	"#79905f",
	"#98b270",
	"#b8bb26",
}

// StatusColor returns the style for a skill status.
func StatusColor(status domain.SkillStatus) lipgloss.Style {
	switch status {
	case domain.StatusMastered:
		return StyleGreen
	case domain.StatusLearning:
		return StyleYellow
	default:
		return StyleBlue
	}
}

// StatusPill returns a colored status indicator such as "✔ Mastered".
func StatusPill(status domain.SkillStatus) string {
	switch status {
	case domain.StatusMastered:
		return StyleGreen.Render("✔ Mastered")
	case domain.StatusLearning:
		return StyleYellow.Render("● Learning")
	case domain.StatusNew:
		return StyleBlue.Render("○ New")
	default:
		return StyleDim.Render(string(status))
	}
}

// CategoryBadge returns a purple category label.
func CategoryBadge(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(c.Label())
}

// HeatCell renders text on the background shade for level 0..4.
func HeatCell(level int, text string) string {
	if level < 0 {
		level = 0
	}
	if level >= len(heatColors) {
		level = len(heatColors) - 1
	}
	style := lipgloss.NewStyle().Background(heatColors[level]).Foreground(ColorFg)
	if level == 0 {
		style = style.Foreground(ColorDim)
	}
	return style.Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warning renders a yellow "!" prefixed line.
func Warning(text string) string {
	return StyleYellow.Render("! " + text)
}
