package update_criteria

import (
	"time"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
)

// Request новое состояние критериев поиска. Запрос несет полную тройку
// (отель, заезд, выезд) - UI всегда отправляет текущие значения пикеров,
// незаполненные поля приходят пустыми.
type Request struct {
	SessionID    string
	HotelID      string     // пустая строка = отель не выбран
	CheckInDate  *time.Time // nil = дата не выбрана
	CheckOutDate *time.Time // nil = дата не выбрана
}

// Response состояние сессии после применения критериев
type Response struct {
	SessionID    string
	Draft        domain.BookingDraft
	Availability domain.AvailabilityState

	// QueryIssued false, когда критерии неполны и запрос не выдавался
	QueryIssued bool

	// Stale true, когда ответ запроса был отброшен из-за более нового запроса;
	// Draft и Availability при этом отражают состояние новейшего запроса
	Stale bool
}
