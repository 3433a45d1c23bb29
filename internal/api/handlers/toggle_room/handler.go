package toggle_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HBP-GuestBookingService/internal/api/handlers"
	"github.com/m04kA/HBP-GuestBookingService/internal/api/middleware"
	toggleRoom "github.com/m04kA/HBP-GuestBookingService/internal/usecase/toggle_room"
)

const (
	msgMissingSessionID = "missing session ID"
	msgSessionNotFound  = "booking session not found"
	msgMissingRoomID    = "missing room ID"
	msgRoomNotAvailable = "room is not available for the selected dates"
)

type Handler struct {
	useCase ToggleRoomUseCase
	logger  Logger
}

func NewHandler(useCase ToggleRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/session/rooms/{roomId}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /session/rooms/{roomId}/toggle - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	roomID := mux.Vars(r)["roomId"]
	if roomID == "" {
		h.logger.Warn("POST /session/rooms/{roomId}/toggle - Missing room ID")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &toggleRoom.Request{
		SessionID: sessionID,
		RoomID:    roomID,
	})
	if err != nil {
		switch {
		case errors.Is(err, toggleRoom.ErrSessionNotFound):
			h.logger.Warn("POST /session/rooms/{roomId}/toggle - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, toggleRoom.ErrRoomNotAvailable):
			h.logger.Warn("POST /session/rooms/{roomId}/toggle - Room not available: session_id=%s, room_id=%s",
				sessionID, roomID)
			handlers.RespondNotFound(w, msgRoomNotAvailable)

		default:
			h.logger.Error("POST /session/rooms/{roomId}/toggle - Failed to toggle room: session_id=%s, room_id=%s, error=%v",
				sessionID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
