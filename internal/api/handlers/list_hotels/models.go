package list_hotels

import "github.com/m04kA/HBP-GuestBookingService/internal/domain"

// HotelResponse HTTP модель отеля
type HotelResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HotelListResponse ответ со списком отелей.
// Degraded true означает, что каталог недоступен и пустой список -
// следствие деградации, а не реальное отсутствие отелей.
type HotelListResponse struct {
	Data     []HotelResponse `json:"data"`
	Degraded bool            `json:"degraded,omitempty"`
}

// FromDomainHotels конвертирует список отелей в HTTP модель
func FromDomainHotels(hotels []domain.Hotel, degraded bool) *HotelListResponse {
	data := make([]HotelResponse, len(hotels))
	for i, hotel := range hotels {
		data[i] = HotelResponse{
			ID:   hotel.ID,
			Name: hotel.Name,
		}
	}

	return &HotelListResponse{
		Data:     data,
		Degraded: degraded,
	}
}
