package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/skatelog/internal/catalog"
	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_Alignment(t *testing.T) {
	got := stripANSI(RenderTable([]string{"NAME", "DAYS"}, [][]string{
		{"Axel", "3"},
		{"Sit Spin", "12"},
	}, 1))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME      DAYS", lines[0])
	assert.Equal(t, "Axel         3", lines[2])
	assert.Equal(t, "Sit Spin    12", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestHumanDay(t *testing.T) {
	assert.Equal(t, "Today", HumanDay("2024-03-10", "2024-03-10"))
	assert.Equal(t, "Yesterday", HumanDay("2024-03-09", "2024-03-10"))
	assert.Equal(t, "Yesterday", HumanDay("2024-02-29", "2024-03-01"))
	assert.Equal(t, "Fri, Mar 1 2024", HumanDay("2024-03-01", "2024-03-10"))
	assert.Equal(t, "garbage", HumanDay("garbage", "2024-03-10"))
}

func TestStatusPill(t *testing.T) {
	tests := []struct {
		status   domain.SkillStatus
		contains string
	}{
		{domain.StatusMastered, "Mastered"},
		{domain.StatusLearning, "Learning"},
		{domain.StatusNew, "New"},
		{"weird", "weird"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusPill(tt.status), tt.contains)
		})
	}
}

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "█████ 10", stripANSI(RenderBar(10, 10, 5, nil)))
	assert.Equal(t, "█░░░░ 1", stripANSI(RenderBar(1, 100, 5, nil)), "non-zero counts get at least one cell")
	assert.Equal(t, "░░░░░ 0", stripANSI(RenderBar(0, 10, 5, nil)))
}

func TestRenderShare(t *testing.T) {
	assert.Equal(t, "[██░░]  50%", stripANSI(RenderShare(2, 4, 4)))
	assert.Equal(t, "[░░░░]   0%", stripANSI(RenderShare(0, 0, 4)))
}

func TestFormatDayLogs(t *testing.T) {
	logs := []domain.PracticeLog{
		{ID: "0123456789abcdef", SkillID: "axel", SkillName: "Axel (Single)", Date: "2024-03-10", Note: "landed"},
		{ID: "fedcba9876543210", SkillID: "pivot", SkillName: "Pivot", Date: "2024-03-10"},
	}

	got := stripANSI(FormatDayLogs("2024-03-10", "2024-03-10", logs))
	assert.Contains(t, got, "TODAY")
	assert.Contains(t, got, "01234567")
	assert.NotContains(t, got, "0123456789")
	assert.Contains(t, got, "Axel (Single)")
	assert.Contains(t, got, "landed")
	assert.Contains(t, got, "2 skills practiced")

	empty := stripANSI(FormatDayLogs("2024-03-01", "2024-03-10", nil))
	assert.Contains(t, empty, "No practice logged.")
}

func TestFormatProgress(t *testing.T) {
	got := stripANSI(FormatProgress([]domain.SkillProgress{
		{SkillID: "lutz", SkillName: "Lutz (Single)", Status: domain.StatusMastered, TotalDays: 4, FirstPracticeDate: "2024-01-01", LastPracticeDate: "2024-03-09"},
		{SkillID: "pivot", SkillName: "Pivot", Status: domain.StatusLearning, TotalDays: 1, FirstPracticeDate: "2024-03-10", LastPracticeDate: "2024-03-10"},
	}, "2024-03-10"))

	assert.Contains(t, got, "Lutz (Single)")
	assert.Contains(t, got, "Yesterday")
	assert.Contains(t, got, "1 Mastered, 1 Learning, 0 New")
	assert.Less(t, strings.Index(got, "Lutz"), strings.Index(got, "Pivot"), "input order is kept")

	assert.Contains(t, stripANSI(FormatProgress(nil, "2024-03-10")), "Nothing practiced yet")
}

func TestFormatSkillRows(t *testing.T) {
	c := catalog.Default()
	overlay := domain.NewStatusOverlay()
	overlay.Set("axel", domain.StatusMastered)
	rows := progress.CatalogView(c.ByCategory(domain.CategoryJumps), nil, overlay)

	got := stripANSI(FormatSkillRows("Jumps", rows, "2024-03-10"))
	assert.Contains(t, got, "JUMPS")
	assert.Contains(t, got, "Axel [Single/Double]")
	assert.Contains(t, got, "1 Mastered, 0 Learning, 11 New")
}

func TestFormatCalendar(t *testing.T) {
	logs := []domain.PracticeLog{
		{ID: "a", Date: "2024-02-01"},
		{ID: "b", Date: "2024-02-01"},
		{ID: "c", Date: "2024-02-29"},
	}
	m, err := progress.MonthGrid("2024-02", logs)
	require.NoError(t, err)

	got := stripANSI(FormatCalendar(m, "2024-02-15"))
	assert.Contains(t, got, "FEBRUARY 2024")
	assert.Contains(t, got, "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, got, "29")
	assert.Contains(t, got, "3 logs across 2 days")
}

func TestFormatStats(t *testing.T) {
	logs := []domain.PracticeLog{
		{ID: "a", SkillID: "axel", SkillName: "Axel (Single)", Date: "2024-03-09"},
		{ID: "b", SkillID: "axel", SkillName: "Axel (Single)", Date: "2024-03-10"},
		{ID: "c", SkillID: "custom", SkillName: "Custom", Date: "2024-03-10"},
	}
	got := stripANSI(FormatStats(Stats{
		Daily:      progress.DailyCounts(logs),
		Skills:     progress.SkillCounts(logs),
		Categories: progress.CategoryCounts(logs, catalog.Default()),
		TotalLogs:  len(logs),
	}, "2024-03-10"))

	assert.Contains(t, got, "RECENT DAYS")
	assert.Contains(t, got, "2024-03-09")
	assert.Contains(t, got, "MOST PRACTICED")
	assert.Less(t, strings.Index(got, "Axel (Single)"), strings.Index(got, "Custom"))
	assert.Contains(t, got, "BY CATEGORY")
	assert.Contains(t, got, "Jumps")
	assert.Contains(t, got, "other")
	assert.Contains(t, got, " 67%")

	assert.Contains(t, stripANSI(FormatStats(Stats{}, "2024-03-10")), "No practice logged yet.")
}
