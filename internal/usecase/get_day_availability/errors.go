package get_day_availability

import "errors"

var (
	ErrInvalidInput = errors.New("get_day_availability: invalid input")
	ErrHallNotFound = errors.New("get_day_availability: hall not found")
	ErrInternal     = errors.New("get_day_availability: internal error")
)
