package toggle_room

import (
	"context"

	storage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
)

// SessionProvider интерфейс доступа к сессиям
type SessionProvider interface {
	GetSession(ctx context.Context, id string) (*storage.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
