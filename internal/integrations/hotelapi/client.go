package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
)

// Client клиент REST API отельной платформы
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента.
// metrics может быть nil, если сбор метрик выключен.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// ListHotels получает каталог отелей
func (c *Client) ListHotels(ctx context.Context) ([]Hotel, error) {
	started := time.Now()

	reqURL := fmt.Sprintf("%s/hotels", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("list_hotels", "transport_error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.observe("list_hotels", "error", started)
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var parsed hotelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.observe("list_hotels", "decode_error", started)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe("list_hotels", "ok", started)
	return parsed.Data, nil
}

// GetAvailableRooms получает комнаты, свободные в окне (отель, заезд, выезд)
func (c *Client) GetAvailableRooms(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]Room, error) {
	started := time.Now()

	query := url.Values{}
	query.Set("hotel", hotelID)
	query.Set("checkInDate", checkIn.Format(domain.DateFormat))
	query.Set("checkOutDate", checkOut.Format(domain.DateFormat))

	reqURL := fmt.Sprintf("%s/rooms/availability?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("get_available_rooms", "transport_error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.observe("get_available_rooms", "error", started)
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var parsed roomListResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.observe("get_available_rooms", "decode_error", started)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe("get_available_rooms", "ok", started)
	return parsed.Data, nil
}

// CreateReservation отправляет заявку на бронирование.
// Вторым значением возвращается сообщение сервера (может быть пустым):
// при успехе - текст для success-баннера, при ErrRejected - причина отказа.
func (c *Client) CreateReservation(ctx context.Context, res domain.ReservationRequest) (*Confirmation, string, error) {
	started := time.Now()

	payload := createReservationRequest{
		CheckInDate:     res.CheckInDate,
		CheckOutDate:    res.CheckOutDate,
		Hotel:           res.HotelID,
		Rooms:           res.RoomIDs,
		Guests:          res.Guests,
		SpecialRequests: res.SpecialRequests,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/reservations", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("create_reservation", "transport_error", started)
		return nil, "", fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var parsed createReservationResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			c.observe("create_reservation", "decode_error", started)
			return nil, "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		c.observe("create_reservation", "ok", started)
		return &parsed.Data, parsed.Message, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Отказ бэкенда содержит сообщение для гостя
		serverMsg := extractServerMessage(resp.Body)
		c.observe("create_reservation", "rejected", started)
		return nil, serverMsg, fmt.Errorf("%w: status code %d", ErrRejected, resp.StatusCode)

	default:
		// Бэкенд может прислать message и с 5xx, например при плановых работах
		rawBody, _ := io.ReadAll(resp.Body)
		serverMsg := extractServerMessage(bytes.NewReader(rawBody))
		c.observe("create_reservation", "error", started)
		return nil, serverMsg, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(rawBody))
	}
}

// extractServerMessage вытаскивает message из тела ошибки,
// пустая строка - если тело нечитаемо или поля нет
func extractServerMessage(body io.Reader) string {
	var parsed ErrorResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return ""
	}
	return parsed.Message
}

func (c *Client) observe(endpoint, outcome string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveHotelAPIRequest(endpoint, outcome, time.Since(started).Seconds())
}
