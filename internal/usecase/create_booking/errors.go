package create_booking

import "errors"

var (
	ErrInvalidInput     = errors.New("create_booking: invalid input")
	ErrHallNotFound     = errors.New("create_booking: hall not found")
	ErrHallInactive     = errors.New("create_booking: hall is inactive")
	ErrCustomerNotFound = errors.New("create_booking: customer not found")
	ErrSlotNotFound     = errors.New("create_booking: slot not found")
	ErrSlotNotAvailable = errors.New("create_booking: slot not available")
	ErrInternal         = errors.New("create_booking: internal error")
)
