package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/skatelog/internal/domain"
)

// LoadResult is the state recovered at startup. Found distinguishes a stored
// document, even an empty one, from nothing stored or an unreadable store.
type LoadResult struct {
	Logs     []domain.PracticeLog
	Statuses *domain.StatusOverlay
	Found    bool
}

// Gateway converts in-memory state to and from the single stored document.
type Gateway struct {
	backend Backend
	logger  *slog.Logger
}

// NewGateway wraps backend. A nil logger discards log output.
func NewGateway(backend Backend, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{backend: backend, logger: logger}
}

// Save writes the full state as one document, replacing whatever was stored.
func (g *Gateway) Save(ctx context.Context, logs []domain.PracticeLog, overlay *domain.StatusOverlay) error {
	data, err := Encode(logs, overlay)
	if err != nil {
		g.logger.ErrorContext(ctx, "state_save_failed", "error", err)
		return err
	}
	if err := g.backend.Write(ctx, data); err != nil {
		g.logger.ErrorContext(ctx, "state_save_failed", "error", err, "bytes", len(data))
		return fmt.Errorf("writing state: %w", err)
	}
	g.logger.DebugContext(ctx, "state_saved", "logs", len(logs), "bytes", len(data))
	return nil
}

// Load reads the stored document. It never fails: an absent, unreadable or
// malformed document yields empty state with Found false.
func (g *Gateway) Load(ctx context.Context) LoadResult {
	empty := LoadResult{Logs: []domain.PracticeLog{}, Statuses: domain.NewStatusOverlay()}

	data, err := g.backend.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			g.logger.DebugContext(ctx, "state_absent")
		} else {
			g.logger.WarnContext(ctx, "state_load_failed", "error", err)
		}
		return empty
	}

	doc, found, stats, err := decode(data)
	if err != nil {
		g.logger.WarnContext(ctx, "state_load_failed", "error", err, "bytes", len(data))
		return empty
	}
	if !found {
		g.logger.DebugContext(ctx, "state_absent", "bytes", len(data))
		return empty
	}
	if stats.droppedLogs > 0 || stats.badLogsField || stats.badStatuses || stats.coercedValues > 0 {
		g.logger.WarnContext(ctx, "state_repaired",
			"dropped_logs", stats.droppedLogs,
			"bad_logs_field", stats.badLogsField,
			"bad_statuses_field", stats.badStatuses,
			"coerced_statuses", stats.coercedValues,
		)
	}

	g.logger.DebugContext(ctx, "state_loaded", "logs", len(doc.Logs), "statuses", len(doc.Statuses))
	return LoadResult{
		Logs:     doc.Logs,
		Statuses: domain.StatusOverlayFromSerializable(doc.Statuses),
		Found:    true,
	}
}
