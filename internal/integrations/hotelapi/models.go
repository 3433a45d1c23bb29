package hotelapi

import "github.com/m04kA/HBP-GuestBookingService/internal/domain"

// Hotel модель отеля из каталога бэкенда
type Hotel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room модель комнаты из выдачи availability
type Room struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"roomNumber"`
	RoomType     string `json:"roomType"`
	MaxOccupancy int    `json:"maxOccupancy"`
}

// Confirmation подтверждение созданной брони
type Confirmation struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Message string `json:"message"`
}

// hotelListResponse обертка ответа GET /hotels
type hotelListResponse struct {
	Data []Hotel `json:"data"`
}

// roomListResponse обертка ответа GET /rooms/availability
type roomListResponse struct {
	Data []Room `json:"data"`
}

// createReservationRequest тело POST /reservations
type createReservationRequest struct {
	CheckInDate     string   `json:"checkInDate"`
	CheckOutDate    string   `json:"checkOutDate"`
	Hotel           string   `json:"hotel"`
	Rooms           []string `json:"rooms"`
	Guests          int      `json:"guests"`
	SpecialRequests string   `json:"specialRequests"`
}

// createReservationResponse ответ POST /reservations
type createReservationResponse struct {
	Data    Confirmation `json:"data"`
	Message string       `json:"message,omitempty"`
}

// ToDomain конвертирует модель отеля в domain
func (h Hotel) ToDomain() domain.Hotel {
	return domain.Hotel{
		ID:   h.ID,
		Name: h.Name,
	}
}

// ToDomain конвертирует модель комнаты в domain
func (r Room) ToDomain() domain.Room {
	return domain.Room{
		ID:           r.ID,
		RoomNumber:   r.RoomNumber,
		RoomType:     r.RoomType,
		MaxOccupancy: r.MaxOccupancy,
	}
}

// HotelsToDomain конвертирует список отелей в domain
func HotelsToDomain(hotels []Hotel) []domain.Hotel {
	out := make([]domain.Hotel, len(hotels))
	for i, h := range hotels {
		out[i] = h.ToDomain()
	}
	return out
}

// RoomsToDomain конвертирует список комнат в domain
func RoomsToDomain(rooms []Room) []domain.Room {
	out := make([]domain.Room, len(rooms))
	for i, r := range rooms {
		out[i] = r.ToDomain()
	}
	return out
}
