package update_details

import (
	"context"

	"github.com/m04kA/HBP-GuestBookingService/internal/service/sessions/models"
)

type SessionService interface {
	UpdateDetails(ctx context.Context, id string, guests *int, specialRequests *string) (*models.SessionStateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
