package create_session

import (
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state := h.service.Create(r.Context())

	h.logger.Info("POST /sessions - Session created: session_id=%s", state.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, state)
}
