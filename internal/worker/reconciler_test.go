package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEventsService struct {
	result *model.ReconciliationResult
	err    error
	runs   int
}

func (f *fakeEventsService) CloseExpiredEvents(ctx context.Context, now time.Time) (*model.ReconciliationResult, error) {
	f.runs++
	return f.result, f.err
}

type fakeSnapshotRepository struct {
	stored *model.ReconciliationResult
}

func (f *fakeSnapshotRepository) Set(ctx context.Context, res *model.ReconciliationResult) error {
	f.stored = res
	return nil
}

func TestReconcilerRun(t *testing.T) {
	result := &model.ReconciliationResult{UpdatedIDs: []int64{1}, UpdatedCount: 1, RanAt: time.Now().UTC()}
	events := &fakeEventsService{result: result}
	snapshots := &fakeSnapshotRepository{}

	r := NewReconciler(zap.NewNop().Sugar(), events, snapshots, "@every 10m")
	r.run(context.Background())

	assert.Equal(t, 1, events.runs)
	assert.Equal(t, result, snapshots.stored)
}

func TestReconcilerRunFailureLeavesSnapshotAlone(t *testing.T) {
	events := &fakeEventsService{err: errors.New("store unavailable")}
	snapshots := &fakeSnapshotRepository{}

	r := NewReconciler(zap.NewNop().Sugar(), events, snapshots, "@every 10m")
	r.run(context.Background())

	assert.Nil(t, snapshots.stored)
}

func TestReconcilerStartRejectsBadSchedule(t *testing.T) {
	r := NewReconciler(zap.NewNop().Sugar(), &fakeEventsService{}, &fakeSnapshotRepository{}, "not a schedule")

	err := r.Start(context.Background())
	require.Error(t, err)
}
