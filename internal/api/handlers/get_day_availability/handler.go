package get_day_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_day_availability"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidDate   = "некорректная дата"
	msgHallNotFound  = "зал не найден"
)

type Handler struct {
	usecase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(usecase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid date: hall_id=%d, error=%v", hallID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), uc.Request{HallID: hallID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/availability - Invalid input: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, uc.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/availability - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		default:
			h.logger.Error("GET /halls/{id}/availability - Failed: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
