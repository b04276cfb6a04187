package get_booking_report

import "errors"

var (
	ErrInvalidInput = errors.New("get_booking_report: invalid input")
	ErrInternal     = errors.New("get_booking_report: internal error")
)
