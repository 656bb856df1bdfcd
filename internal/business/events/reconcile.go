package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
)

// CloseExpiredEvents reconciles every active event against now: events whose
// estimated end time has passed are flipped to inactive in one bulk update,
// the rest stay untouched. Both the read and the write run in a single
// transaction so the batch sees one consistent snapshot.
//
// Events with no estimable window are skipped; an unknown weekday label skips
// only the event that carries it, never the batch. Re-running over an
// already-closed set reports zero updates.
func (s *Service) CloseExpiredEvents(ctx context.Context, now time.Time) (*model.ReconciliationResult, error) {
	now = now.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	active, err := s.eventsRepository.GetActiveEvents(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetActiveEvents: %w", err)
	}

	var expired []int64
	for _, e := range active {
		end, ok, err := EstimateEndTime(e, s.fallbackDuration)
		if err != nil {
			if errors.Is(err, model.ErrUnknownWeekday) {
				s.logger.Errorw("skipping event with bad weekday label", "id", e.ID, "err", err)
				continue
			}
			return nil, fmt.Errorf("estimate end time for event %v: %w", e.ID, err)
		}
		if !ok {
			s.logger.Debugw("event has no estimable end time, leaving active", "id", e.ID)
			continue
		}

		if end.Before(now) {
			expired = append(expired, e.ID)
		}
	}

	res := &model.ReconciliationResult{RanAt: now}

	if len(expired) == 0 {
		return res, nil
	}

	updated, err := s.eventsRepository.CloseEvents(ctx, tx, expired)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CloseEvents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	res.UpdatedIDs = updated
	res.UpdatedCount = len(updated)

	return res, nil
}
