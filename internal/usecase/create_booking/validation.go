package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// validateRequest проверяет корректность заявки до обращения к справочникам
func validateRequest(req Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallId must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}
	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}
	if len(req.Dates) > domain.MaxSelectionDatesPerReq {
		return fmt.Errorf("%w: too many dates, max %d", ErrInvalidInput, domain.MaxSelectionDatesPerReq)
	}
	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}
	if req.AdvanceAmount < 0 {
		return fmt.Errorf("%w: advanceAmount must not be negative", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long, max %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	seen := make(map[string]struct{}, len(req.Dates))
	for _, sel := range req.Dates {
		if _, err := time.Parse(domain.DateFormat, sel.Date); err != nil {
			return fmt.Errorf("%w: bad date %q, expected %s", ErrInvalidInput, sel.Date, domain.DateFormat)
		}
		if _, dup := seen[sel.Date]; dup {
			return fmt.Errorf("%w: duplicate date %s", ErrInvalidInput, sel.Date)
		}
		seen[sel.Date] = struct{}{}

		if !sel.IsFullDay && len(sel.SlotIDs) == 0 {
			return fmt.Errorf("%w: date %s has neither slots nor full-day flag", ErrInvalidInput, sel.Date)
		}
	}

	return nil
}
