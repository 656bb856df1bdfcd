package api

import (
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
)

type eventResp struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Sim       string   `json:"sim,omitempty"`
	Date      string   `json:"date,omitempty"`
	Year      *int     `json:"year,omitempty"`
	Week      *int     `json:"week,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
	TimeOfDay string   `json:"timeOfDay,omitempty"`
}

func mapToEventResp(e *model.Event) *eventResp {
	date := ""
	if e.Date != nil {
		date = e.Date.Format("2006-01-02")
	}

	return &eventResp{
		ID:        e.ID,
		Title:     e.Title,
		Sim:       e.Sim,
		Date:      date,
		Year:      e.Year,
		Week:      e.Week,
		Weekdays:  e.Weekdays,
		TimeOfDay: e.TimeOfDay,
	}
}

type reconciliationResp struct {
	Message       string    `json:"message"`
	UpdatedCount  int       `json:"updatedCount"`
	UpdatedEvents []int64   `json:"updatedEvents,omitempty"`
	RanAt         time.Time `json:"ranAt"`
}

func mapToReconciliationResp(message string, res *model.ReconciliationResult) *reconciliationResp {
	return &reconciliationResp{
		Message:       message,
		UpdatedCount:  res.UpdatedCount,
		UpdatedEvents: res.UpdatedIDs,
		RanAt:         res.RanAt,
	}
}
