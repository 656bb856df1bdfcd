package events

import (
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
)

// eventDTO mirrors the events table row. Scheduling columns are nullable:
// one-off events fill event_date, recurring events fill race_year/race_week
// plus weekdays. The mapping makes that split explicit instead of letting
// nulls leak into date arithmetic.
type eventDTO struct {
	ID        int64
	Title     string
	Sim       string
	IsActive  bool
	EventDate *time.Time
	RaceYear  *int
	RaceWeek  *int
	Weekdays  []string
	TimeOfDay *string
}

func mapToEvent(dto *eventDTO) *model.Event {
	timeOfDay := ""
	if dto.TimeOfDay != nil {
		timeOfDay = *dto.TimeOfDay
	}

	var date *time.Time
	if dto.EventDate != nil {
		d := dto.EventDate.UTC()
		date = &d
	}

	return &model.Event{
		ID:        dto.ID,
		Title:     dto.Title,
		Sim:       dto.Sim,
		IsActive:  dto.IsActive,
		Date:      date,
		Year:      dto.RaceYear,
		Week:      dto.RaceWeek,
		Weekdays:  dto.Weekdays,
		TimeOfDay: timeOfDay,
	}
}
