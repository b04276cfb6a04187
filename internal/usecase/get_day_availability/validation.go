package get_day_availability

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
