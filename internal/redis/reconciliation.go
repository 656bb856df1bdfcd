package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/gridline/raceboard-backend/internal/model"
	"go.uber.org/zap"
)

const reconciliationSnapshotKey = "reconciliation:latest"

// ReconciliationSnapshotRepository keeps the result of the most recent
// reconciliation run, expiring it after the configured TTL.
type ReconciliationSnapshotRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
	ttl    time.Duration
}

func NewReconciliationSnapshotRepository(pool *redis.Pool, logger *zap.SugaredLogger, ttl time.Duration) *ReconciliationSnapshotRepository {
	return &ReconciliationSnapshotRepository{
		pool:   pool,
		logger: logger,
		ttl:    ttl,
	}
}

func (r *ReconciliationSnapshotRepository) Set(ctx context.Context, res *model.ReconciliationResult) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if _, err := conn.Do("SET", reconciliationSnapshotKey, data, "PX", r.ttl.Milliseconds()); err != nil {
		return fmt.Errorf("SET: %w", err)
	}

	r.logger.Debugw("stored reconciliation snapshot", "count", res.UpdatedCount)

	return nil
}

// Get returns the latest stored run, or model.ErrNoRecord when no run is
// cached or the snapshot has expired.
func (r *ReconciliationSnapshotRepository) Get(ctx context.Context) (*model.ReconciliationResult, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", reconciliationSnapshotKey))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET: %w", err)
	}

	res := &model.ReconciliationResult{}
	if err := json.Unmarshal(data, res); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return res, nil
}
