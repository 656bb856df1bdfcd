// Package isoweek implements the week numbering used by the event board.
//
// CurrentWeekInfo uses the board's historical fixed-arithmetic formula rather
// than strict ISO-8601 numbering; Range anchors week 1 to the week containing
// January 4th. The two agree for years starting on a Monday and drift apart
// otherwise, most visibly near year boundaries. That drift is longstanding
// site behaviour and is kept as-is.
package isoweek

import (
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
)

// weekdayNumber returns t's weekday in the Monday=1..Sunday=7 convention.
func weekdayNumber(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// CurrentWeekInfo returns the calendar year of now and the board's week
// number for it: ceil((daysSinceJan1 + weekdayNumber(Jan 1) + 1) / 7).
func CurrentWeekInfo(now time.Time) model.WeekInfo {
	now = now.UTC()
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := now.YearDay() - 1
	week := (days + weekdayNumber(jan1) + 1 + 6) / 7

	return model.WeekInfo{Year: now.Year(), Week: week}
}

// Range returns the calendar span of the given week. Week 1 starts on the
// Monday of the week containing January 4th; the range runs Monday through
// Sunday at UTC midnight.
func Range(year, week int) model.WeekRange {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	start := jan4.AddDate(0, 0, (week-1)*7-(weekdayNumber(jan4)-1))

	return model.WeekRange{
		Year:  year,
		Week:  week,
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}

// DateFromWeekAndDay resolves a weekday label within the given week to a
// concrete calendar date at UTC midnight.
func DateFromWeekAndDay(year, week int, label string) (time.Time, error) {
	day, err := ParseWeekday(label)
	if err != nil {
		return time.Time{}, err
	}

	return Range(year, week).Start.AddDate(0, 0, day.Offset()), nil
}
