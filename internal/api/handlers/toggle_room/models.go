package toggle_room

import (
	"github.com/m04kA/HBP-GuestBookingService/internal/service/sessions/models"
	toggleRoom "github.com/m04kA/HBP-GuestBookingService/internal/usecase/toggle_room"
)

// ToggleRoomResponse HTTP response model
type ToggleRoomResponse struct {
	SessionID    string                      `json:"sessionId"`
	Selected     bool                        `json:"selected"`
	Draft        models.DraftResponse        `json:"draft"`
	Availability models.AvailabilityResponse `json:"availability"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleRoom.Response) *ToggleRoomResponse {
	return &ToggleRoomResponse{
		SessionID:    resp.SessionID,
		Selected:     resp.Selected,
		Draft:        models.FromDomainDraft(resp.Draft),
		Availability: models.FromDomainAvailability(resp.Availability),
	}
}
