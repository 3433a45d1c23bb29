package hotelapi

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик исходящих запросов.
// Допускается nil, если сбор метрик выключен.
type MetricsRecorder interface {
	ObserveHotelAPIRequest(endpoint, outcome string, seconds float64)
}
