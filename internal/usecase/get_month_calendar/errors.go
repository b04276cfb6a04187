package get_month_calendar

import "errors"

var (
	ErrInvalidInput = errors.New("get_month_calendar: invalid input")
	ErrInternal     = errors.New("get_month_calendar: internal error")
)
