package events

import "github.com/gridline/raceboard-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"title",
		"sim",
		"is_active",
		"event_date",
		"race_year",
		"race_week",
		"weekdays",
		"time_of_day",
	).
	From(database.EventsTable)
