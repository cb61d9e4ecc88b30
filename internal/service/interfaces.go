package service

import (
	"context"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/persist"
)

// StateStore persists the whole tracker state. *persist.Gateway implements it.
type StateStore interface {
	Save(ctx context.Context, logs []domain.PracticeLog, overlay *domain.StatusOverlay) error
	Load(ctx context.Context) persist.LoadResult
}

var _ StateStore = (*persist.Gateway)(nil)
