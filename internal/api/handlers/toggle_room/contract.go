package toggle_room

import (
	"context"

	toggleRoom "github.com/m04kA/HBP-GuestBookingService/internal/usecase/toggle_room"
)

type ToggleRoomUseCase interface {
	Execute(ctx context.Context, req *toggleRoom.Request) (*toggleRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
