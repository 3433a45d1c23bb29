package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже завершена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInvalidGuestCount возвращается при числе гостей меньше 1
	ErrInvalidGuestCount = errors.New("sessions: guest count must be at least 1")

	// ErrSpecialRequestsTooLong возвращается при превышении лимита длины пожеланий
	ErrSpecialRequestsTooLong = errors.New("sessions: special requests text is too long")
)
