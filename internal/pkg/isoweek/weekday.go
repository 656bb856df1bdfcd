package isoweek

import (
	"fmt"
	"strings"

	"github.com/gridline/raceboard-backend/internal/model"
)

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Offset is the day count from the Monday that starts the week.
func (d Weekday) Offset() int {
	return int(d)
}

// weekdayLabels is the full set of labels accepted from event records: the
// short and long Korean forms used by the site forms and CSV imports, plus
// lowercase English names.
var weekdayLabels = map[string]Weekday{
	"월": Monday, "월요일": Monday, "monday": Monday,
	"화": Tuesday, "화요일": Tuesday, "tuesday": Tuesday,
	"수": Wednesday, "수요일": Wednesday, "wednesday": Wednesday,
	"목": Thursday, "목요일": Thursday, "thursday": Thursday,
	"금": Friday, "금요일": Friday, "friday": Friday,
	"토": Saturday, "토요일": Saturday, "saturday": Saturday,
	"일": Sunday, "일요일": Sunday, "sunday": Sunday,
}

// ParseWeekday maps a weekday label to a Weekday. Labels outside the table
// are a data error and resolve to model.ErrUnknownWeekday.
func ParseWeekday(label string) (Weekday, error) {
	d, ok := weekdayLabels[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownWeekday, label)
	}

	return d, nil
}
