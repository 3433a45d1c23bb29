package hotelapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hotelapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда
	ErrInvalidResponse = errors.New("hotelapi client: invalid response")

	// ErrUnavailable возвращается при 5xx, таймауте или сетевой ошибке
	ErrUnavailable = errors.New("hotelapi client: backend unavailable")

	// ErrRejected возвращается, когда бэкенд отклонил заявку (4xx).
	// Сообщение сервера передается отдельным значением и показывается гостю как есть.
	ErrRejected = errors.New("hotelapi client: request rejected")
)
