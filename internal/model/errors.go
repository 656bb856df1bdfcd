package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrUnknownWeekday = errors.New("unknown weekday label")
