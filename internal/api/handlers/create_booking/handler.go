package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgHallNotFound       = "зал не найден"
	msgHallInactive       = "зал недоступен для бронирования"
	msgCustomerNotFound   = "клиент не найден"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "выбранный слот уже занят"
)

type Handler struct {
	usecase CreateBookingUseCase
	cache   CacheInvalidator
	scope   string
	logger  Logger
}

func NewHandler(usecase CreateBookingUseCase, cache CacheInvalidator, scope string, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		cache:   cache,
		scope:   scope,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req uc.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, uc.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, uc.ErrHallInactive):
			h.logger.Warn("POST /bookings - Hall inactive: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgHallInactive)

		case errors.Is(err, uc.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, uc.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: %v", err)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, uc.ErrSlotNotAvailable):
			// Восстановимый конфликт: клиент перечитывает доступность
			h.logger.Info("POST /bookings - Slot conflict: hall_id=%d", req.HallID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.invalidateMonths(r, req)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, hall_id=%d", resp.ID, resp.HallID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// invalidateMonths сбрасывает кэш календаря всех месяцев, затронутых бронью
func (h *Handler) invalidateMonths(r *http.Request, req uc.Request) {
	if h.cache == nil {
		return
	}

	seen := make(map[string]struct{}, 2)
	for _, sel := range req.Dates {
		d, err := time.Parse(domain.DateFormat, sel.Date)
		if err != nil {
			continue
		}
		key := d.Format("2006-01")
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}
		h.cache.Invalidate(r.Context(), h.scope, d.Year(), int(d.Month()), req.HallID)
	}
}
