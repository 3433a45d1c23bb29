package update_criteria

import (
	"context"
	"time"

	storage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
)

// SessionProvider интерфейс доступа к сессиям
type SessionProvider interface {
	GetSession(ctx context.Context, id string) (*storage.Session, error)
}

// HotelAPIClient интерфейс клиента availability
type HotelAPIClient interface {
	GetAvailableRooms(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]hotelapi.Room, error)
}

// StaleCounter интерфейс метрики отброшенных устаревших ответов. Допускается nil.
type StaleCounter interface {
	IncStaleAvailability()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
