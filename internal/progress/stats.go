package progress

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/skatelog/internal/domain"
)

// CategoryOther collects logs whose skill id is not in the catalog.
const CategoryOther domain.Category = "other"

// DayCount is the number of logs recorded on one date.
type DayCount struct {
	Date  string
	Count int
}

// DailyCounts returns per-date log counts sorted by date ascending.
func DailyCounts(logs []domain.PracticeLog) []DayCount {
	counts := make(map[string]int)
	for _, l := range logs {
		counts[l.Date]++
	}
	out := make([]DayCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DayCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// HeatLevel buckets a day's log count for the calendar: 0, 1-2, 3-4, 5-6, 7+.
func HeatLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}

// DayCell is one day of a calendar month.
type DayCell struct {
	Date  string
	Day   int
	Count int
}

// Month is a calendar page. Offset is the weekday of the first day
// (Sunday = 0), i.e. the number of leading blank cells.
type Month struct {
	Year   int
	Month  time.Month
	Offset int
	Days   []DayCell
}

// MonthGrid builds the calendar page for month ("YYYY-MM") with per-day log
// counts.
func MonthGrid(month string, logs []domain.PracticeLog) (Month, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
	}

	counts := make(map[string]int)
	for _, l := range logs {
		counts[l.Date]++
	}

	m := Month{Year: start.Year(), Month: start.Month(), Offset: int(start.Weekday())}
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		key := domain.FormatDate(d)
		m.Days = append(m.Days, DayCell{Date: key, Day: d.Day(), Count: counts[key]})
	}
	return m, nil
}

// NameCount is a log count keyed by a display label.
type NameCount struct {
	Name  string
	Count int
}

// SkillCounts returns log counts per denormalized skill name, most practiced
// first, ties by name.
func SkillCounts(logs []domain.PracticeLog) []NameCount {
	counts := make(map[string]int)
	for _, l := range logs {
		counts[l.SkillName]++
	}
	out := make([]NameCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CategoryResolver maps a skill id to its catalog category.
type CategoryResolver interface {
	CategoryOf(skillID string) (domain.Category, bool)
}

// CategoryCount is a log count for one category.
type CategoryCount struct {
	Category domain.Category
	Count    int
}

// CategoryCounts returns log counts for every catalog category in catalog
// order, zeros included. Logs whose skill the resolver does not know are
// counted under CategoryOther, which is appended only when non-zero.
func CategoryCounts(logs []domain.PracticeLog, resolver CategoryResolver) []CategoryCount {
	counts := make(map[domain.Category]int)
	for _, l := range logs {
		cat, ok := resolver.CategoryOf(l.SkillID)
		if !ok {
			cat = CategoryOther
		}
		counts[cat]++
	}

	out := make([]CategoryCount, 0, len(domain.Categories())+1)
	for _, c := range domain.Categories() {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	if n := counts[CategoryOther]; n > 0 {
		out = append(out, CategoryCount{Category: CategoryOther, Count: n})
	}
	return out
}
