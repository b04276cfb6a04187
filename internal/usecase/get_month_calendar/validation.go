package get_month_calendar

import "fmt"

// validateRequest проверяет корректность входных данных
func validateRequest(req Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallId must be positive", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidInput, req.Year)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidInput, req.Month)
	}
	return nil
}
