package update_criteria

import (
	"errors"
	"net/http"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
	"github.com/m04kA/HBP-GuestBookingService/internal/api/middleware"
	updateCriteria "github.com/m04kA/HBP-GuestBookingService/internal/usecase/update_criteria"
)

const (
	msgMissingSessionID   = "missing session ID"
	msgSessionNotFound    = "booking session not found"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange   = "check-out date must be after check-in date"
)

type Handler struct {
	useCase UpdateCriteriaUseCase
	logger  Logger
}

func NewHandler(useCase UpdateCriteriaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/session/criteria
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("PUT /session/criteria - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req UpdateCriteriaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session/criteria - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("PUT /session/criteria - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateCriteria.ErrSessionNotFound):
			h.logger.Warn("PUT /session/criteria - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, updateCriteria.ErrInvalidDateRange):
			h.logger.Warn("PUT /session/criteria - Inverted date range: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("PUT /session/criteria - Failed to update criteria: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
