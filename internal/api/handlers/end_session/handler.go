package end_session

import (
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
	"github.com/m04kA/HBP-GuestBookingService/internal/api/middleware"
)

const msgMissingSessionID = "missing session ID"

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

// Handle DELETE /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /session - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	// Завершение идемпотентно: повторный DELETE тоже отвечает 204
	h.service.End(r.Context(), sessionID)

	h.logger.Info("DELETE /session - Session ended: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
