package submit_reservation

import (
	"context"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	storage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
)

// SessionProvider интерфейс доступа к сессиям
type SessionProvider interface {
	GetSession(ctx context.Context, id string) (*storage.Session, error)
}

// HotelAPIClient интерфейс клиента создания брони
type HotelAPIClient interface {
	CreateReservation(ctx context.Context, res domain.ReservationRequest) (*hotelapi.Confirmation, string, error)
}

// SubmitMetrics интерфейс метрик отправки. Допускается nil.
type SubmitMetrics interface {
	IncSubmitAttempt(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
