package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gridline/raceboard-backend/internal/database"
	"github.com/gridline/raceboard-backend/internal/model"
)

// GetActiveEvents returns every event still flagged active, in one bulk read.
func (*Repository) GetActiveEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"is_active": true}).
		OrderBy("id")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
