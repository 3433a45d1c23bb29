package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже завершена
	ErrSessionNotFound = errors.New("session.store: session not found")
)
