package get_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
	"github.com/m04kA/HBP-GuestBookingService/internal/api/middleware"
	"github.com/m04kA/HBP-GuestBookingService/internal/service/sessions"
)

const (
	msgMissingSessionID = "missing session ID"
	msgSessionNotFound  = "booking session not found"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/session/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /session/draft - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	state, err := h.service.GetState(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /session/draft - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /session/draft - Failed to get state: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
