package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/skatelog/internal/catalog"
	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/export"
	"github.com/alexanderramin/skatelog/internal/persist"
	"github.com/alexanderramin/skatelog/internal/service"
	"github.com/alexanderramin/skatelog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 18, 0, 0, 0, time.Local)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	gw := persist.NewGateway(persist.NewSQLiteBackend(database, testutil.NewTestUoW(database)), nil)

	tracker := service.NewTracker(gw,
		service.WithClock(testutil.FixedClock(testNow)),
		service.WithIDGenerator(testutil.SequentialIDs("log")),
	)
	tracker.Start(context.Background())

	return &App{
		Tracker:   tracker,
		ExportDir: t.TempDir(),
		Now:       testutil.FixedClock(testNow),
	}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// failingStore accepts loads but rejects every save.
type failingStore struct{}

func (failingStore) Save(context.Context, []domain.PracticeLog, *domain.StatusOverlay) error {
	return errors.New("read-only filesystem")
}

func (failingStore) Load(context.Context) persist.LoadResult {
	return persist.LoadResult{Statuses: domain.NewStatusOverlay()}
}

// --- log / day ---

func TestLogCmd_WithVariant(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "log", "axel", "--variant", "Single", "--note", "two-footed")
	require.NoError(t, err)
	assert.Contains(t, out, "Axel (Single)")
	assert.Contains(t, out, "2024-03-10")

	logs := app.Tracker.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "two-footed", logs[0].Note)
	assert.NoError(t, app.Tracker.LastSaveError())
}

func TestLogCmd_GlobalDateFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--date", "2024-02-29", "log", "pivot")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", app.Tracker.Logs()[0].Date)

	_, err = executeCmd(t, app, "--date", "2024-02-30", "log", "pivot")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestLogCmd_VariantRequired(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "log", "lutz")
	assert.ErrorIs(t, err, domain.ErrVariantRequired)
	assert.Empty(t, app.Tracker.Logs())
}

func TestLogCmd_NoSkillNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skill id required")
}

func TestLogCmd_InteractivePicker(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.PickSkill = func(_ context.Context, c *catalog.Catalog, _ func(string) (domain.SkillStatus, bool)) (PickResult, error) {
		require.NotNil(t, c)
		return PickResult{SkillID: "flip", Variant: "Double", Note: "picked"}, nil
	}

	_, err := executeCmd(t, app, "log")
	require.NoError(t, err)

	logs := app.Tracker.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "Flip (Double)", logs[0].SkillName)
	assert.Equal(t, "picked", logs[0].Note)
}

func TestLogCmd_WarnsWhenSaveFails(t *testing.T) {
	app := &App{Tracker: service.NewTracker(failingStore{})}

	out, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)
	assert.Contains(t, out, "change not saved")
	assert.Contains(t, out, "read-only filesystem")
}

// countingStore keeps the last saved logs and counts saves.
type countingStore struct {
	saves int
	logs  []domain.PracticeLog
}

func (c *countingStore) Save(_ context.Context, logs []domain.PracticeLog, _ *domain.StatusOverlay) error {
	c.saves++
	c.logs = logs
	return nil
}

func (c *countingStore) Load(context.Context) persist.LoadResult {
	return persist.LoadResult{Statuses: domain.NewStatusOverlay()}
}

func TestLogCmd_NoteSavedWithLog(t *testing.T) {
	store := &countingStore{}
	app := &App{Tracker: service.NewTracker(store)}

	_, err := executeCmd(t, app, "log", "pivot", "--note", "  deep edge  ")
	require.NoError(t, err)

	assert.Equal(t, 1, store.saves, "one log action writes once")
	require.Len(t, store.logs, 1)
	assert.Equal(t, "deep edge", store.logs[0].Note)
}

func TestDayCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "--date", "2024-03-09", "log", "mohawk", "--variant", "LFO")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "day")
	require.NoError(t, err)
	assert.Contains(t, out, "Pivot")
	assert.NotContains(t, out, "Mohawk")

	out, err = executeCmd(t, app, "day", "--date", "2024-03-09")
	require.NoError(t, err)
	assert.Contains(t, out, "Mohawk")
}

// --- delete / note ---

func TestDeleteCmd_ByPrefix(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "log", "mohawk", "--variant", "LFO")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "delete", "log-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	logs := app.Tracker.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "log-2", logs[0].ID)
}

func TestDeleteCmd_Unknown(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "delete", "nope")
	assert.ErrorIs(t, err, service.ErrLogNotFound)
}

func TestDeleteCmd_Ambiguous(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "delete", "log-")
	assert.ErrorIs(t, err, service.ErrAmbiguousLogID)
	assert.Len(t, app.Tracker.Logs(), 2)
}

func TestNoteCmd_SetAndClear(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "note", "log-1", "held", "the", "edge")
	require.NoError(t, err)
	assert.Contains(t, out, "Note saved")
	assert.Equal(t, "held the edge", app.Tracker.Logs()[0].Note)

	out, err = executeCmd(t, app, "note", "log-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Note cleared")
	assert.Empty(t, app.Tracker.Logs()[0].Note)
}

// --- status / progress / skills ---

func TestStatusCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "status", "lutz", "mastered")
	require.NoError(t, err)
	assert.Contains(t, out, "Lutz")
	assert.Contains(t, out, "Mastered")

	s, ok := app.Tracker.Status("lutz")
	require.True(t, ok)
	assert.Equal(t, domain.StatusMastered, s)

	_, err = executeCmd(t, app, "status", "lutz", "expert")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = executeCmd(t, app, "status", "quad-axel", "new")
	assert.ErrorIs(t, err, catalog.ErrUnknownSkill)
}

// retiredStore loads one log whose skill is no longer in the catalog.
type retiredStore struct{ countingStore }

func (retiredStore) Load(context.Context) persist.LoadResult {
	return persist.LoadResult{
		Found:    true,
		Logs:     []domain.PracticeLog{{ID: "old-1", SkillID: "retired-skill", SkillName: "Retired Skill", Date: "2024-01-01"}},
		Statuses: domain.NewStatusOverlay(),
	}
}

func TestStatusCmd_LoggedSkillOutsideCatalog(t *testing.T) {
	tracker := service.NewTracker(&retiredStore{})
	tracker.Start(context.Background())
	app := &App{Tracker: tracker}

	out, err := executeCmd(t, app, "status", "retired-skill", "mastered")
	require.NoError(t, err)
	assert.Contains(t, out, "retired-skill")
	assert.Contains(t, out, "Mastered")
}

func TestProgressCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "log", "lutz", "--variant", "Single")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "status", "lutz", "mastered")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "status", "axel", "learning")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Lutz (Single)"), strings.Index(out, "Pivot"), "mastered sorts first")
	assert.NotContains(t, out, "Axel", "unpracticed skills are omitted")

	out, err = executeCmd(t, app, "progress", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Axel")
	assert.Contains(t, out, "Waltz Jump")
}

func TestSkillsCmd_Category(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "skills", "--category", "spins")
	require.NoError(t, err)
	assert.Contains(t, out, "Sit Spin")
	assert.NotContains(t, out, "Waltz Jump")

	_, err = executeCmd(t, app, "skills", "--category", "lifts")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

// --- calendar / stats ---

func TestCalendarCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "calendar")
	require.NoError(t, err)
	assert.Contains(t, out, "MARCH 2024")

	out, err = executeCmd(t, app, "calendar", "--month", "2024-02")
	require.NoError(t, err)
	assert.Contains(t, out, "FEBRUARY 2024")

	_, err = executeCmd(t, app, "calendar", "--month", "2024/02")
	assert.Error(t, err)
}

func TestStatsCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "MOST PRACTICED")
	assert.Contains(t, out, "Pivot")
}

// --- export ---

func TestExportCSV_DefaultPath(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot", "--note", `said "nice"`)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "export", "csv")
	require.NoError(t, err)

	path := filepath.Join(app.ExportDir, export.DefaultFileName(export.FilePrefix, "csv", testNow))
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Skill Name,Variant,Note\n\"2024-03-10\",\"Pivot\",\"\",\"said \"\"nice\"\"\"", string(data))
}

func TestExportCSV_EmptyWritesNothing(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	_, err := executeCmd(t, app, "export", "csv", "--out", out)
	assert.ErrorIs(t, err, export.ErrNoLogs)
	assert.NoFileExists(t, out)
}

func TestExportPDF(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "log", "pivot")
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "nested", "report.pdf")

	_, err = executeCmd(t, app, "export", "pdf", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

// --- bootstrap ---

func TestRootCmd_Bootstrap(t *testing.T) {
	var gotConfig string
	app := &App{
		Bootstrap: func(_ context.Context, a *App, configPath string) error {
			gotConfig = configPath
			a.Tracker = service.NewTracker(failingStore{})
			return nil
		},
	}

	_, err := executeCmd(t, app, "--config", "/etc/skatelog.yaml", "skills")
	require.NoError(t, err)
	assert.Equal(t, "/etc/skatelog.yaml", gotConfig)
	assert.NotNil(t, app.Tracker)
}

func TestRootCmd_NoTracker(t *testing.T) {
	_, err := executeCmd(t, &App{}, "skills")
	require.Error(t, err)
}
