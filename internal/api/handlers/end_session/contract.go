package end_session

import "context"

type SessionService interface {
	End(ctx context.Context, id string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
