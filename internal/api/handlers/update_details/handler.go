package update_details

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
	"github.com/m04kA/HBP-GuestBookingService/internal/api/middleware"
	"github.com/m04kA/HBP-GuestBookingService/internal/service/sessions"
)

const (
	msgMissingSessionID       = "missing session ID"
	msgSessionNotFound        = "booking session not found"
	msgInvalidRequestBody     = "invalid request body"
	msgInvalidGuestCount      = "guest count must be at least 1"
	msgSpecialRequestsTooLong = "special requests text is too long"
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

// Handle PUT /api/v1/session/details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("PUT /session/details - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req UpdateDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.UpdateDetails(r.Context(), sessionID, req.Guests, req.SpecialRequests)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /session/details - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidGuestCount):
			h.logger.Warn("PUT /session/details - Invalid guest count: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidGuestCount)

		case errors.Is(err, sessions.ErrSpecialRequestsTooLong):
			h.logger.Warn("PUT /session/details - Special requests too long: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgSpecialRequestsTooLong)

		default:
			h.logger.Error("PUT /session/details - Failed to update details: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
