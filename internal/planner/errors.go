package planner

import "errors"

var (
	ErrEmptyTask        = errors.New("task text is empty")
	ErrHourModeActive   = errors.New("disable hour mode to add regular tasks")
	ErrInvalidDay       = errors.New("unknown weekday")
	ErrInvalidHour      = errors.New("hour out of range")
	ErrInvalidHourRange = errors.New("start hour must be before end hour")
	ErrUnknownSetting   = errors.New("unknown setting")
	ErrInvalidValue     = errors.New("invalid setting value")
)

// HourModeWarning is shown when hour mode gets enabled.
const HourModeWarning = "History is not available in hour mode."
