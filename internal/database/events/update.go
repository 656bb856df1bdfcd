package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gridline/raceboard-backend/internal/database"
)

// CloseEvents flips is_active to false for the given ids and returns the ids
// actually updated. The is_active filter makes repeated or concurrent runs
// over the same set report zero additional updates.
func (*Repository) CloseEvents(ctx context.Context, q database.Queryable, ids []int64) ([]int64, error) {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("is_active", false).
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"is_active": true}).
		Suffix("returning id")

	var updated []int64
	if err := q.Select(ctx, &updated, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return updated, nil
}
