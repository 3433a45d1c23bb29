package submit_reservation

import (
	"github.com/m04kA/HBP-GuestBookingService/internal/service/sessions/models"
	submitReservation "github.com/m04kA/HBP-GuestBookingService/internal/usecase/submit_reservation"
)

// ConfirmationResponse подтверждение созданной брони
type ConfirmationResponse struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// SubmitReservationResponse HTTP response model. Итог отправки гость видит
// в draft.lastAlert; поле outcome дублирует его машинно-читаемым значением.
type SubmitReservationResponse struct {
	SessionID    string                      `json:"sessionId"`
	Outcome      string                      `json:"outcome"`
	Confirmation *ConfirmationResponse       `json:"confirmation,omitempty"`
	Draft        models.DraftResponse        `json:"draft"`
	Availability models.AvailabilityResponse `json:"availability"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *SubmitReservationResponse {
	out := &SubmitReservationResponse{
		SessionID:    resp.SessionID,
		Outcome:      string(resp.Outcome),
		Draft:        models.FromDomainDraft(resp.Draft),
		Availability: models.FromDomainAvailability(resp.Availability),
	}

	if resp.Confirmation != nil {
		out.Confirmation = &ConfirmationResponse{
			ID:     resp.Confirmation.ID,
			Status: resp.Confirmation.Status,
		}
	}

	return out
}
