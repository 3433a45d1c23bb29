package update_criteria

import (
	"time"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	"github.com/m04kA/HBP-GuestBookingService/internal/service/sessions/models"
	updateCriteria "github.com/m04kA/HBP-GuestBookingService/internal/usecase/update_criteria"
)

// UpdateCriteriaRequest HTTP request model. UI шлет полную тройку критериев,
// незаполненные пикеры приходят пустыми строками.
type UpdateCriteriaRequest struct {
	HotelID      string `json:"hotelId"`      // "" = отель не выбран
	CheckInDate  string `json:"checkInDate"`  // "2025-06-01", "" = не выбрана
	CheckOutDate string `json:"checkOutDate"` // "2025-06-03", "" = не выбрана
}

// UpdateCriteriaResponse HTTP response model
type UpdateCriteriaResponse struct {
	SessionID    string                      `json:"sessionId"`
	Draft        models.DraftResponse        `json:"draft"`
	Availability models.AvailabilityResponse `json:"availability"`
	QueryIssued  bool                        `json:"queryIssued"`
	Stale        bool                        `json:"stale,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *UpdateCriteriaRequest) ToUseCaseRequest(sessionID string) (*updateCriteria.Request, error) {
	req := &updateCriteria.Request{
		SessionID: sessionID,
		HotelID:   r.HotelID,
	}

	if r.CheckInDate != "" {
		checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
		if err != nil {
			return nil, err
		}
		req.CheckInDate = &checkIn
	}

	if r.CheckOutDate != "" {
		checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
		if err != nil {
			return nil, err
		}
		req.CheckOutDate = &checkOut
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateCriteria.Response) *UpdateCriteriaResponse {
	return &UpdateCriteriaResponse{
		SessionID:    resp.SessionID,
		Draft:        models.FromDomainDraft(resp.Draft),
		Availability: models.FromDomainAvailability(resp.Availability),
		QueryIssued:  resp.QueryIssued,
		Stale:        resp.Stale,
	}
}
