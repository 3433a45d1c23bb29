package update_criteria

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("update_criteria: session not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда.
	// Исходный клиент такой проверки не делал; добавлена осознанно, чтобы не
	// спрашивать бэкенд про окно отрицательной длины.
	ErrInvalidDateRange = errors.New("update_criteria: check-out date must be after check-in date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_criteria: internal error")
)
