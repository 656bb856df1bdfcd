package events

import (
	"strings"
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
	"github.com/gridline/raceboard-backend/internal/pkg/isoweek"
)

const endOfDay = 24*time.Hour - time.Millisecond

// EstimateEndTime computes the single instant after which an event no longer
// counts as running.
//
// An explicit date wins over the year/week/weekday fields; when only the
// latter are present, the first listed weekday is authoritative. A start
// time of day (the "HH:MM" head of a possible "HH:MM~HH:MM" range) pushes
// the end to start plus the fallback duration; without one the event holds
// the whole calendar day, ending at 23:59:59.999.
//
// Returns ok=false when the record carries no usable schedule at all; such
// events must be left alone by callers. A weekday label outside the known
// table is a data error, reported per event.
func EstimateEndTime(e *model.Event, fallback time.Duration) (end time.Time, ok bool, err error) {
	var day time.Time

	switch {
	case e.Date != nil:
		day = e.Date.UTC().Truncate(24 * time.Hour)
	case e.Year != nil && e.Week != nil && len(e.Weekdays) != 0:
		day, err = isoweek.DateFromWeekAndDay(*e.Year, *e.Week, e.Weekdays[0])
		if err != nil {
			return time.Time{}, false, err
		}
	default:
		return time.Time{}, false, nil
	}

	if h, m, parsed := parseStartOfDayTime(e.TimeOfDay); parsed {
		start := day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		return start.Add(fallback), true, nil
	}

	return day.Add(endOfDay), true, nil
}

// parseStartOfDayTime extracts the leading HH:MM from a time-of-day string,
// which may be a single time or a "HH:MM~HH:MM" range. Malformed values are
// treated the same as an absent time of day.
func parseStartOfDayTime(s string) (hour, minute int, ok bool) {
	start, _, _ := strings.Cut(s, "~")
	t, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return 0, 0, false
	}

	return t.Hour(), t.Minute(), true
}
