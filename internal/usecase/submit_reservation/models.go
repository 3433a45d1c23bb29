package submit_reservation

import (
	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
)

// Outcome исход попытки отправки
type Outcome string

const (
	// OutcomeSubmitted бронь создана, черновик сброшен
	OutcomeSubmitted Outcome = "submitted"

	// OutcomeValidationFailed не заполнены обязательные поля, сеть не трогали
	OutcomeValidationFailed Outcome = "validation_failed"

	// OutcomeIgnored отправка уже в полете, вызов проигнорирован (single-flight)
	OutcomeIgnored Outcome = "ignored"

	// OutcomeRejected бэкенд отклонил заявку, поля черновика сохранены
	OutcomeRejected Outcome = "rejected"

	// OutcomeFailed бэкенд недоступен или ответил 5xx, поля черновика сохранены
	OutcomeFailed Outcome = "failed"
)

// Request запрос на отправку черновика
type Request struct {
	SessionID string
}

// Response состояние сессии после попытки отправки
type Response struct {
	SessionID    string
	Draft        domain.BookingDraft
	Availability domain.AvailabilityState
	Outcome      Outcome

	// Confirmation заполнено только при OutcomeSubmitted
	Confirmation *hotelapi.Confirmation
}
