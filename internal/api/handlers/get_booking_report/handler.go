package get_booking_report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_booking_report"
)

const (
	msgInvalidQuery = "некорректные параметры отчёта"
)

type Handler struct {
	usecase GetBookingReportUseCase
	logger  Logger
}

func NewHandler(usecase GetBookingReportUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD&hallId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /reports/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /reports/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /reports/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func parseQuery(r *http.Request) (uc.Request, error) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		return uc.Request{}, err
	}
	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		return uc.Request{}, err
	}

	req := uc.Request{From: from, To: to}
	if raw := query.Get("hallId"); raw != "" {
		hallID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return uc.Request{}, err
		}
		req.HallID = &hallID
	}

	return req, nil
}
