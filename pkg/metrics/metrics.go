package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// Входящие HTTP запросы
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Исходящие запросы к бэкенду отельной платформы
	HotelAPIRequestsTotal   *prometheus.CounterVec
	HotelAPIRequestDuration *prometheus.HistogramVec

	// Состояние сессий бронирования
	ActiveSessions             prometheus.Gauge
	StaleAvailabilityResponses prometheus.Counter
	SubmitAttemptsTotal        *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HotelAPIRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "hotel_api_requests_total",
			Help:        "Total number of requests to the hotel platform backend",
			ConstLabels: constLabels,
		}, []string{"endpoint", "outcome"}),

		HotelAPIRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "hotel_api_request_duration_seconds",
			Help:        "Hotel platform backend request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Number of active guest booking sessions",
			ConstLabels: constLabels,
		}),

		StaleAvailabilityResponses: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "availability_stale_responses_total",
			Help:        "Availability responses dropped because a newer query was issued",
			ConstLabels: constLabels,
		}),

		SubmitAttemptsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_submit_attempts_total",
			Help:        "Reservation submission attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveHotelAPIRequest фиксирует исходящий запрос к бэкенду
func (m *Metrics) ObserveHotelAPIRequest(endpoint, outcome string, seconds float64) {
	m.HotelAPIRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.HotelAPIRequestDuration.WithLabelValues(endpoint).Observe(seconds)
}

// IncStaleAvailability фиксирует отброшенный устаревший ответ availability
func (m *Metrics) IncStaleAvailability() {
	m.StaleAvailabilityResponses.Inc()
}

// IncSubmitAttempt фиксирует попытку отправки бронирования
func (m *Metrics) IncSubmitAttempt(outcome string) {
	m.SubmitAttemptsTotal.WithLabelValues(outcome).Inc()
}

// SetActiveSessions выставляет число активных сессий
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}
