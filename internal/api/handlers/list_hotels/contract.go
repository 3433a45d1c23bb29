package list_hotels

import (
	"context"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
)

type HotelCatalog interface {
	List(ctx context.Context) ([]domain.Hotel, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
