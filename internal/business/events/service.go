package events

import (
	"context"
	"fmt"
	"time"

	"github.com/gridline/raceboard-backend/internal/database"
	"github.com/gridline/raceboard-backend/internal/model"
	"go.uber.org/zap"
)

type Service struct {
	db               database.PGX
	logger           *zap.SugaredLogger
	eventsRepository eventsRepository
	fallbackDuration time.Duration
}

type eventsRepository interface {
	GetActiveEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error)
	CloseEvents(ctx context.Context, q database.Queryable, ids []int64) ([]int64, error)
}

func NewService(db database.PGX, logger *zap.SugaredLogger, repo eventsRepository, fallbackDuration time.Duration) *Service {
	return &Service{
		db:               db,
		logger:           logger,
		eventsRepository: repo,
		fallbackDuration: fallbackDuration,
	}
}

// GetOpenEvents lists the events currently shown as open on the board.
func (s *Service) GetOpenEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetActiveEvents(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetActiveEvents: %w", err)
	}

	return events, nil
}
