package toggle_room

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("toggle_room: session not found")

	// ErrRoomNotAvailable возвращается при попытке выбрать комнату,
	// которой нет в последней выдаче availability
	ErrRoomNotAvailable = errors.New("toggle_room: room is not in the current availability result")
)
