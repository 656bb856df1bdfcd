package model

import "time"

// Event is a multiplayer race event as stored by the external event store.
// One-off events carry an explicit Date; recurring events carry a Year/Week
// pair plus the weekday labels they run on.
type Event struct {
	ID        int64
	Title     string
	Sim       string
	IsActive  bool
	Date      *time.Time
	Year      *int
	Week      *int
	Weekdays  []string
	TimeOfDay string
}

// HasSchedule reports whether the event carries enough scheduling data for an
// end time to be estimated: either an explicit date, or a year/week pair with
// at least one weekday.
func (e *Event) HasSchedule() bool {
	if e.Date != nil {
		return true
	}
	return e.Year != nil && e.Week != nil && len(e.Weekdays) != 0
}

type WeekInfo struct {
	Year int
	Week int
}

// WeekRange is the calendar span of a numbered week. Start is the Monday of
// the week at UTC midnight, End is Start plus six days. Derived on demand,
// never persisted.
type WeekRange struct {
	Year  int
	Week  int
	Start time.Time
	End   time.Time
}

// ReconciliationResult describes one batch run of the event closer.
type ReconciliationResult struct {
	UpdatedIDs   []int64
	UpdatedCount int
	RanAt        time.Time
}
