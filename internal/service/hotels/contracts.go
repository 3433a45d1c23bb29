package hotels

import (
	"context"

	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
)

// HotelAPIClient интерфейс клиента каталога отелей
type HotelAPIClient interface {
	ListHotels(ctx context.Context) ([]hotelapi.Hotel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
