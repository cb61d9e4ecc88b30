package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/skatelog/internal/catalog"
	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/progress"
	"github.com/google/uuid"
)

var (
	ErrLogNotFound    = errors.New("practice log not found")
	ErrAmbiguousLogID = errors.New("ambiguous practice log id")
)

// Tracker owns the in-memory practice logs and status overlay of one session.
// Every effective mutation saves the complete state through the StateStore.
// A failed save is recorded and leaves the in-memory state untouched.
type Tracker struct {
	mu sync.Mutex

	store    StateStore
	catalog  *catalog.Catalog
	observer UseCaseObserver
	now      func() time.Time
	newID    func() string

	logs     *domain.LogStore
	overlay  *domain.StatusOverlay
	selected string
	saveErr  error
}

type TrackerOption func(*Tracker)

func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

func WithIDGenerator(gen func() string) TrackerOption {
	return func(t *Tracker) { t.newID = gen }
}

func WithObserver(obs UseCaseObserver) TrackerOption {
	return func(t *Tracker) {
		if obs != nil {
			t.observer = obs
		}
	}
}

func WithCatalog(c *catalog.Catalog) TrackerOption {
	return func(t *Tracker) { t.catalog = c }
}

func NewTracker(store StateStore, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		store:    store,
		catalog:  catalog.Default(),
		observer: NoopUseCaseObserver{},
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		logs:     domain.NewLogStore(),
		overlay:  domain.NewStatusOverlay(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start loads stored state. When a document was found its logs and statuses
// replace the in-memory state, even if both are empty.
func (t *Tracker) Start(ctx context.Context) (found bool) {
	startedAt := t.now()
	res := t.store.Load(ctx)

	t.mu.Lock()
	if res.Found {
		t.logs.Replace(res.Logs)
		t.overlay = res.Statuses
		if t.overlay == nil {
			t.overlay = domain.NewStatusOverlay()
		}
	}
	fields := map[string]any{"found": res.Found, "logs": t.logs.Len(), "statuses": t.overlay.Len()}
	t.mu.Unlock()

	observe(ctx, t.observer, "start", startedAt, fields, nil)
	return res.Found
}

func (t *Tracker) Catalog() *catalog.Catalog {
	return t.catalog
}

// Today is the current local date.
func (t *Tracker) Today() string {
	return domain.FormatDate(t.now())
}

// SelectDate sets the date new logs are recorded under.
func (t *Tracker) SelectDate(date string) error {
	if err := domain.ValidateDate(date); err != nil {
		return err
	}
	t.mu.Lock()
	t.selected = date
	t.mu.Unlock()
	return nil
}

// SelectedDate defaults to today until SelectDate is called.
func (t *Tracker) SelectedDate() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selectedLocked()
}

func (t *Tracker) selectedLocked() string {
	if t.selected == "" {
		return t.Today()
	}
	return t.selected
}

// LogPractice records skill as practiced on the selected date with an
// optional note. The variant must be one of the skill's variants, or empty
// for skills without any.
func (t *Tracker) LogPractice(ctx context.Context, skill domain.SkillDefinition, variant, note string) (entry domain.PracticeLog, err error) {
	startedAt := t.now()
	fields := map[string]any{"skill_id": skill.ID, "variant": variant, "note_len": len(note)}
	defer func() { observe(ctx, t.observer, "log-practice", startedAt, fields, err) }()

	if err = skill.CheckVariant(variant); err != nil {
		return domain.PracticeLog{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entry = domain.PracticeLog{
		ID:        t.newID(),
		SkillID:   skill.ID,
		SkillName: skill.DisplayName(variant),
		Date:      t.selectedLocked(),
		Note:      note,
	}
	if err = t.logs.Append(entry); err != nil {
		return domain.PracticeLog{}, fmt.Errorf("recording practice: %w", err)
	}
	fields["log_id"] = entry.ID
	fields["date"] = entry.Date
	t.saveLocked(ctx, fields)
	return entry, nil
}

// LogPracticeByID resolves skillID in the catalog and logs it.
func (t *Tracker) LogPracticeByID(ctx context.Context, skillID, variant, note string) (domain.PracticeLog, error) {
	skill, err := t.catalog.Lookup(skillID)
	if err != nil {
		return domain.PracticeLog{}, err
	}
	return t.LogPractice(ctx, skill, variant, note)
}

// DeleteLog removes the log with id. A missing id is a no-op and reports false.
func (t *Tracker) DeleteLog(ctx context.Context, id string) bool {
	startedAt := t.now()
	fields := map[string]any{"log_id": id}

	t.mu.Lock()
	removed := t.logs.Remove(id)
	fields["changed"] = removed
	if removed {
		t.saveLocked(ctx, fields)
	}
	t.mu.Unlock()

	observe(ctx, t.observer, "delete-log", startedAt, fields, nil)
	return removed
}

// UpdateNote replaces the note of log id. A missing id is a no-op and
// reports false.
func (t *Tracker) UpdateNote(ctx context.Context, id, note string) bool {
	startedAt := t.now()
	fields := map[string]any{"log_id": id, "note_len": len(note)}

	t.mu.Lock()
	updated := t.logs.UpdateNote(id, note)
	fields["changed"] = updated
	if updated {
		t.saveLocked(ctx, fields)
	}
	t.mu.Unlock()

	observe(ctx, t.observer, "update-note", startedAt, fields, nil)
	return updated
}

// ChangeSkillStatus sets the declared status of a catalog skill, or of a
// skill id that only appears in stored logs. Existing practice logs are not
// touched.
func (t *Tracker) ChangeSkillStatus(ctx context.Context, skillID string, status domain.SkillStatus) (err error) {
	startedAt := t.now()
	fields := map[string]any{"skill_id": skillID, "status": string(status)}
	defer func() { observe(ctx, t.observer, "change-status", startedAt, fields, err) }()

	if !domain.ValidStatuses[string(status)] {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err = t.catalog.Lookup(skillID); err != nil {
		if !t.loggedLocked(skillID) {
			return err
		}
		err = nil
	}
	t.overlay.Set(skillID, status)
	t.saveLocked(ctx, fields)
	return nil
}

// loggedLocked reports whether any practice log refers to skillID. Callers
// hold mu.
func (t *Tracker) loggedLocked(skillID string) bool {
	for _, l := range t.logs.ListAll() {
		if l.SkillID == skillID {
			return true
		}
	}
	return false
}

// saveLocked persists the full state and records the outcome. Callers hold mu.
func (t *Tracker) saveLocked(ctx context.Context, fields map[string]any) {
	t.saveErr = t.store.Save(ctx, t.logs.ListAll(), t.overlay)
	fields["saved"] = t.saveErr == nil
	if t.saveErr != nil {
		fields["save_error"] = t.saveErr.Error()
	}
}

// LastSaveError is the outcome of the most recent save, nil on success or
// when nothing has been saved yet.
func (t *Tracker) LastSaveError() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveErr
}

// Logs returns every practice log in insertion order.
func (t *Tracker) Logs() []domain.PracticeLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.logs.ListAll()
}

func (t *Tracker) LogsForDate(date string) []domain.PracticeLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.logs.ListForDate(date)
}

// TodayLogs returns the logs recorded under the selected date.
func (t *Tracker) TodayLogs() []domain.PracticeLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.logs.ListForDate(t.selectedLocked())
}

// Progress summarizes every practiced skill in first-practiced order.
func (t *Tracker) Progress() []domain.SkillProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return progress.Compute(t.logs.ListAll(), t.overlay)
}

// CatalogRows joins the catalog with computed progress, sorted for display.
func (t *Tracker) CatalogRows(cat domain.Category) []progress.SkillRow {
	skills := t.catalog.All()
	if cat != "" {
		skills = t.catalog.ByCategory(cat)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	rows := progress.CatalogView(skills, progress.Compute(t.logs.ListAll(), t.overlay), t.overlay)
	progress.SortRows(rows)
	return rows
}

// Status returns the declared status of skillID, if any.
func (t *Tracker) Status(skillID string) (domain.SkillStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.overlay.Get(skillID)
}

// Statuses returns a copy of the status overlay.
func (t *Tracker) Statuses() *domain.StatusOverlay {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.StatusOverlayFromSerializable(t.overlay.ToSerializable())
}

// ResolveLogID expands a full id or unique id prefix to the stored id.
func (t *Tracker) ResolveLogID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty id", ErrLogNotFound)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.logs.Get(input); ok {
		return input, nil
	}

	var matches []string
	for _, l := range t.logs.ListAll() {
		if strings.HasPrefix(l.ID, input) {
			matches = append(matches, l.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrLogNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d logs", ErrAmbiguousLogID, input, len(matches))
	}
}
