package sessions

import (
	"time"

	storage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create() *storage.Session
	Get(id string) (*storage.Session, error)
	Delete(id string)
	Count() int
	DeleteIdle(ttl time.Duration) int
}

// SessionMetrics интерфейс метрик сессий. Допускается nil.
type SessionMetrics interface {
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
