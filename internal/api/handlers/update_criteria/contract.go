package update_criteria

import (
	"context"

	updateCriteria "github.com/m04kA/HBP-GuestBookingService/internal/usecase/update_criteria"
)

type UpdateCriteriaUseCase interface {
	Execute(ctx context.Context, req *updateCriteria.Request) (*updateCriteria.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
