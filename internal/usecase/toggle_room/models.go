package toggle_room

import "github.com/m04kA/HBP-GuestBookingService/internal/domain"

// Request запрос на переключение выбора комнаты
type Request struct {
	SessionID string
	RoomID    string
}

// Response состояние сессии после переключения
type Response struct {
	SessionID    string
	Draft        domain.BookingDraft
	Availability domain.AvailabilityState

	// Selected true, если комната после переключения выбрана
	Selected bool
}
