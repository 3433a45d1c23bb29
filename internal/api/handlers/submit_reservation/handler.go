package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
	"github.com/m04kA/HBP-GuestBookingService/internal/api/middleware"
	submitReservation "github.com/m04kA/HBP-GuestBookingService/internal/usecase/submit_reservation"
)

const (
	msgMissingSessionID = "missing session ID"
	msgSessionNotFound  = "booking session not found"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/session/submit
//
// Исход отправки (включая отказ бэкенда и проваленную валидацию) - это
// состояние черновика, а не ошибка HTTP: ответ 200, гость читает lastAlert.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /session/submit - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitReservation.Request{
		SessionID: sessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrSessionNotFound):
			h.logger.Warn("POST /session/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /session/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session/submit - Submission finished: session_id=%s, outcome=%s",
		sessionID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
