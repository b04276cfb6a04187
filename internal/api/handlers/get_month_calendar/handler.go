package get_month_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_month_calendar"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidPeriod = "некорректный год или месяц"
)

type Handler struct {
	usecase GetMonthCalendarUseCase
	scope   string
	logger  Logger
}

func NewHandler(usecase GetMonthCalendarUseCase, scope string, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		scope:   scope,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/calendar - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /halls/{id}/calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /halls/{id}/calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), uc.Request{
		Scope:  h.scope,
		Year:   year,
		Month:  month,
		HallID: hallID,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/calendar - Invalid input: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /halls/{id}/calendar - Failed: hall_id=%d, year=%d, month=%d, error=%v", hallID, year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
