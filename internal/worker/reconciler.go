package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// Reconciler closes expired events on a cron schedule, independent of the
// manual HTTP trigger. Each tick is one full reconciliation run; runs are
// idempotent, so overlap with a manual trigger is harmless.
type Reconciler struct {
	logger    *zap.SugaredLogger
	events    eventsService
	snapshots snapshotRepository
	schedule  string
}

type eventsService interface {
	CloseExpiredEvents(ctx context.Context, now time.Time) (*model.ReconciliationResult, error)
}

type snapshotRepository interface {
	Set(ctx context.Context, res *model.ReconciliationResult) error
}

func NewReconciler(
	logger *zap.SugaredLogger,
	events eventsService,
	snapshots snapshotRepository,
	schedule string,
) *Reconciler {
	return &Reconciler{
		logger:    logger,
		events:    events,
		snapshots: snapshots,
		schedule:  schedule,
	}
}

func (r *Reconciler) Start(ctx context.Context) error {
	c := cron.New()

	if _, err := c.AddFunc(r.schedule, func() {
		r.run(ctx)
	}); err != nil {
		return fmt.Errorf("parse schedule %q: %w", r.schedule, err)
	}

	c.Start()

	closer.Bind(func() {
		<-c.Stop().Done()
	})

	return nil
}

func (r *Reconciler) run(ctx context.Context) {
	res, err := r.events.CloseExpiredEvents(ctx, time.Now().UTC())
	if err != nil {
		r.logger.Errorw("failed to close expired events", "err", err)
		return
	}

	if err := r.snapshots.Set(ctx, res); err != nil {
		r.logger.Errorw("failed to store reconciliation snapshot", "err", err)
	}

	if res.UpdatedCount > 0 {
		r.logger.Infow("closed expired events", "count", res.UpdatedCount, "ids", res.UpdatedIDs)
	} else {
		r.logger.Debugw("no expired events")
	}
}
