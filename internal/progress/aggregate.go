// Package progress derives per-skill summaries and chart statistics from the
// practice log. Every function here is pure: it reads its inputs and never
// mutates them.
package progress

import "github.com/alexanderramin/skatelog/internal/domain"

// StatusLookup is the read side of the status overlay.
type StatusLookup interface {
	Get(skillID string) (domain.SkillStatus, bool)
}

type skillGroup struct {
	progress domain.SkillProgress
	dates    map[string]struct{}
}

// Compute groups logs by skill and returns one SkillProgress per practiced
// skill, in order of each skill's first appearance in logs.
//
// TotalDays counts distinct dates, not logs. First/last dates compare as
// strings, which is valid for zero-padded YYYY-MM-DD keys. The name comes from
// the log with the latest date (the later log wins a same-day tie). Status is
// the overlay's entry when one exists, otherwise learning. Skills with no logs
// never appear, whatever the overlay says. Logs with an empty skill id are
// grouped under "".
func Compute(logs []domain.PracticeLog, overlay StatusLookup) []domain.SkillProgress {
	groups := make(map[string]*skillGroup)
	var order []string

	for _, l := range logs {
		g, ok := groups[l.SkillID]
		if !ok {
			g = &skillGroup{
				progress: domain.SkillProgress{
					SkillID:           l.SkillID,
					SkillName:         l.SkillName,
					FirstPracticeDate: l.Date,
					LastPracticeDate:  l.Date,
				},
				dates: make(map[string]struct{}),
			}
			groups[l.SkillID] = g
			order = append(order, l.SkillID)
		}

		g.dates[l.Date] = struct{}{}
		if l.Date < g.progress.FirstPracticeDate {
			g.progress.FirstPracticeDate = l.Date
		}
		if l.Date >= g.progress.LastPracticeDate {
			g.progress.LastPracticeDate = l.Date
			g.progress.SkillName = l.SkillName
		}
	}

	out := make([]domain.SkillProgress, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.progress.TotalDays = len(g.dates)
		g.progress.Status = domain.StatusLearning
		if overlay != nil {
			if s, ok := overlay.Get(id); ok {
				g.progress.Status = s
			}
		}
		out = append(out, g.progress)
	}
	return out
}

// ForDate returns the logs recorded on date, in their original order.
func ForDate(logs []domain.PracticeLog, date string) []domain.PracticeLog {
	var out []domain.PracticeLog
	for _, l := range logs {
		if l.Date == date {
			out = append(out, l)
		}
	}
	return out
}
