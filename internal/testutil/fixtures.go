package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/google/uuid"
)

// Practice log options
type LogOption func(*domain.PracticeLog)

func WithDate(date string) LogOption {
	return func(l *domain.PracticeLog) {
		l.Date = date
	}
}

func WithVariant(v string) LogOption {
	return func(l *domain.PracticeLog) {
		l.Variant = v
	}
}

func WithNote(n string) LogOption {
	return func(l *domain.PracticeLog) {
		l.Note = n
	}
}

func WithSkillName(name string) LogOption {
	return func(l *domain.PracticeLog) {
		l.SkillName = name
	}
}

func WithID(id string) LogOption {
	return func(l *domain.PracticeLog) {
		l.ID = id
	}
}

// NewTestLog builds a practice log for skillID dated today (UTC) with a
// fresh id. SkillName defaults to skillID.
func NewTestLog(skillID string, opts ...LogOption) domain.PracticeLog {
	l := domain.PracticeLog{
		ID:        uuid.New().String(),
		SkillID:   skillID,
		SkillName: skillID,
		Date:      domain.FormatDate(time.Now().UTC()),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// FixedClock returns a clock function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

