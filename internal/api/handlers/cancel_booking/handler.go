package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgCannotCancel     = "бронирование не может быть отменено"
)

type Handler struct {
	service BookingService
	cache   CacheInvalidator
	scope   string
	logger  Logger
}

func NewHandler(service BookingService, cache CacheInvalidator, scope string, logger Logger) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		scope:   scope,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
// Повторная отмена уже отменённого бронирования - no-op с кодом 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.invalidateMonths(r, bookingID)

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// invalidateMonths сбрасывает кэш календаря месяцев, освобождённых отменой
func (h *Handler) invalidateMonths(r *http.Request, bookingID int64) {
	if h.cache == nil {
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Failed to load booking for cache invalidation: booking_id=%d, error=%v", bookingID, err)
		return
	}

	dates := []string{booking.EventDate}
	for _, row := range booking.Dates {
		dates = append(dates, row.Date)
	}

	seen := make(map[string]struct{}, 2)
	for _, raw := range dates {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			continue
		}
		key := parsed.Format("2006-01")
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}
		h.cache.Invalidate(r.Context(), h.scope, parsed.Year(), int(parsed.Month()), booking.HallID)
	}
}
