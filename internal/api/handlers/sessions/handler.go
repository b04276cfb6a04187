package sessions

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/staging"
	"github.com/m04kA/SMC-VenueBookingService/internal/session"
	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPeriod      = "некорректный период снимка"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgSnapshotNotReady   = "снимок занятости ещё не загружен"
	msgSnapshotFailed     = "не удалось загрузить занятость"
	msgEmptySelection     = "пустой выбор"
	msgNothingStaged      = "в композиции нет выбранных слотов"
	msgMixedHalls         = "композиция содержит выборы по разным залам"
	msgSlotConflict       = "выбранный слот уже занят"
	msgCreateFailed       = "не удалось создать бронирование"
)

// Handler обслуживает сессии композиции бронирования
// Один пакет на группу эндпоинтов: сессия - единый ресурс с под-операциями
type Handler struct {
	staging StagingService
	creator CreateBookingUseCase
	cache   CacheInvalidator
	scope   string
	logger  Logger
}

func NewHandler(stagingSvc StagingService, creator CreateBookingUseCase, cache CacheInvalidator, scope string, logger Logger) *Handler {
	return &Handler{
		staging: stagingSvc,
		creator: creator,
		cache:   cache,
		scope:   scope,
		logger:  logger,
	}
}

// Create POST /api/v1/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		h.logger.Warn("POST /sessions - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	sess, err := h.staging.CreateSession(r.Context(), req.HallID, from, to)
	if err != nil {
		if errors.Is(err, staging.ErrInvalidInput) {
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	_, state := sess.Snapshot.Current()
	h.logger.Info("POST /sessions - Session created: session_id=%s, hall_id=%d", sess.ID, req.HallID)
	handlers.RespondJSON(w, http.StatusCreated, CreateSessionResponse{
		SessionID:     sess.ID,
		SnapshotState: staging.SnapshotStateLabel(state),
	})
}

// Delete DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	h.staging.DeleteSession(sessionID)
	h.logger.Info("DELETE /sessions/{id} - Session deleted: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Refresh POST /api/v1/sessions/{sessionId}/refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req RefreshSnapshotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/refresh - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/refresh - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	if err := h.staging.RefreshSnapshot(r.Context(), sessionID, req.HallID, from, to); err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/refresh - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, staging.ErrSnapshotFailed):
			h.logger.Error("POST /sessions/{id}/refresh - Snapshot fetch failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSnapshotFailed)

		default:
			h.logger.Error("POST /sessions/{id}/refresh - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

// Selections GET /api/v1/sessions/{sessionId}/selections
func (h *Handler) Selections(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	views, err := h.staging.Selections(r.Context(), sessionID)
	if err != nil {
		h.respondStagingError(w, "GET /sessions/{id}/selections", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SelectionsResponse{Selections: views})
}

// AddSelection POST /api/v1/sessions/{sessionId}/selections
func (h *Handler) AddSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req AddSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/selections - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	views, err := h.staging.AddSelection(r.Context(), sessionID, req.HallID, req.Date, req.SlotIDs, req.IsFullDay)
	if err != nil {
		h.respondStagingError(w, "POST /sessions/{id}/selections", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SelectionsResponse{Selections: views})
}

// ToggleSlot POST /api/v1/sessions/{sessionId}/toggle-slot
func (h *Handler) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/toggle-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	views, err := h.staging.ToggleSlot(r.Context(), sessionID, req.HallID, req.Date, req.SlotID)
	if err != nil {
		h.respondStagingError(w, "POST /sessions/{id}/toggle-slot", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SelectionsResponse{Selections: views})
}

// ToggleFullDay POST /api/v1/sessions/{sessionId}/toggle-full-day
func (h *Handler) ToggleFullDay(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ToggleFullDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/toggle-full-day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	views, err := h.staging.ToggleFullDay(r.Context(), sessionID, req.HallID, req.Date, req.Enable)
	if err != nil {
		h.respondStagingError(w, "POST /sessions/{id}/toggle-full-day", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SelectionsResponse{Selections: views})
}

// Finalize POST /api/v1/sessions/{sessionId}/finalize
// Закрывает композицию и создаёт бронирование; после успешной записи
// снимок сессии и кэш календаря сбрасываются
func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req FinalizeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/finalize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sub, err := h.staging.Finalize(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/finalize - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrNothingStaged):
			h.logger.Warn("POST /sessions/{id}/finalize - Nothing staged: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNothingStaged)

		case errors.Is(err, session.ErrMixedHalls):
			h.logger.Warn("POST /sessions/{id}/finalize - Mixed halls: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgMixedHalls)

		default:
			h.logger.Error("POST /sessions/{id}/finalize - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp, err := h.creator.Execute(r.Context(), req.toCreateRequest(sub))
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrSlotNotAvailable):
			// Занятость изменилась между снимком и записью: снимок недействителен
			h.staging.Invalidate(sessionID)
			h.logger.Info("POST /sessions/{id}/finalize - Slot conflict: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, uc.ErrInvalidInput),
			errors.Is(err, uc.ErrHallNotFound),
			errors.Is(err, uc.ErrHallInactive),
			errors.Is(err, uc.ErrCustomerNotFound),
			errors.Is(err, uc.ErrSlotNotFound):
			h.logger.Warn("POST /sessions/{id}/finalize - Rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgCreateFailed)

		default:
			h.logger.Error("POST /sessions/{id}/finalize - Failed to create booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.staging.Invalidate(sessionID)
	h.invalidateMonths(r, sub)

	h.logger.Info("POST /sessions/{id}/finalize - Booking created: session_id=%s, booking_id=%d", sessionID, resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// respondStagingError разбирает общие ошибки операций над сессией
func (h *Handler) respondStagingError(w http.ResponseWriter, op, sessionID string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, session.ErrSnapshotNotReady):
		h.logger.Warn("%s - Snapshot not ready: session_id=%s", op, sessionID)
		handlers.RespondConflict(w, msgSnapshotNotReady)

	case errors.Is(err, session.ErrEmptySelection):
		h.logger.Warn("%s - Empty selection: session_id=%s", op, sessionID)
		handlers.RespondBadRequest(w, msgEmptySelection)

	default:
		h.logger.Error("%s - Failed: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
	}
}

// invalidateMonths сбрасывает кэш календаря всех месяцев, затронутых композицией
func (h *Handler) invalidateMonths(r *http.Request, sub *session.Submission) {
	if h.cache == nil {
		return
	}

	seen := make(map[string]struct{}, 2)
	for _, d := range sub.Dates {
		parsed, err := time.Parse(domain.DateFormat, d.Date)
		if err != nil {
			continue
		}
		key := parsed.Format("2006-01")
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}
		h.cache.Invalidate(r.Context(), h.scope, parsed.Year(), int(parsed.Month()), sub.HallID)
	}
}

func parsePeriod(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from, err := time.Parse(domain.DateFormat, fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(domain.DateFormat, toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
