package models

import (
	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
)

// AlertResponse пользовательское уведомление о результате отправки
type AlertResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RoomResponse комната из последней выдачи availability
type RoomResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"roomNumber"`
	RoomType     string `json:"roomType"`
	MaxOccupancy int    `json:"maxOccupancy"`
}

// DraftResponse текущее состояние черновика бронирования
type DraftResponse struct {
	CheckInDate      *string        `json:"checkInDate"`  // "2025-06-01", null = не задано
	CheckOutDate     *string        `json:"checkOutDate"` // "2025-06-03", null = не задано
	HotelID          string         `json:"hotelId"`
	SelectedRoomIDs  []string       `json:"selectedRoomIds"`
	GuestCount       int            `json:"guestCount"`
	MaxGuestsAllowed int            `json:"maxGuestsAllowed"`
	SpecialRequests  string         `json:"specialRequests"`
	Status           string         `json:"status"`
	LastAlert        *AlertResponse `json:"lastAlert,omitempty"`
}

// AvailabilityResponse состояние последнего запроса availability
type AvailabilityResponse struct {
	Status string         `json:"status"`
	Rooms  []RoomResponse `json:"rooms"`
}

// SessionStateResponse полное состояние гостевой сессии
type SessionStateResponse struct {
	SessionID    string               `json:"sessionId,omitempty"`
	Draft        DraftResponse        `json:"draft"`
	Availability AvailabilityResponse `json:"availability"`
}

// Методы конвертации

// FromDomainDraft конвертирует черновик в DTO
func FromDomainDraft(d domain.BookingDraft) DraftResponse {
	resp := DraftResponse{
		HotelID:          d.HotelID,
		SelectedRoomIDs:  d.SelectedRoomIDs,
		GuestCount:       d.GuestCount,
		MaxGuestsAllowed: d.MaxGuestsAllowed,
		SpecialRequests:  d.SpecialRequests,
		Status:           string(d.Status),
	}

	if resp.SelectedRoomIDs == nil {
		resp.SelectedRoomIDs = []string{}
	}

	if d.CheckInDate != nil {
		formatted := d.CheckInDate.Format(domain.DateFormat)
		resp.CheckInDate = &formatted
	}
	if d.CheckOutDate != nil {
		formatted := d.CheckOutDate.Format(domain.DateFormat)
		resp.CheckOutDate = &formatted
	}
	if d.LastAlert != nil {
		resp.LastAlert = &AlertResponse{
			Kind:    string(d.LastAlert.Kind),
			Message: d.LastAlert.Message,
		}
	}

	return resp
}

// FromDomainAvailability конвертирует состояние availability в DTO
func FromDomainAvailability(av domain.AvailabilityState) AvailabilityResponse {
	rooms := make([]RoomResponse, len(av.Rooms))
	for i, room := range av.Rooms {
		rooms[i] = RoomResponse{
			ID:           room.ID,
			RoomNumber:   room.RoomNumber,
			RoomType:     room.RoomType,
			MaxOccupancy: room.MaxOccupancy,
		}
	}

	return AvailabilityResponse{
		Status: string(av.Status),
		Rooms:  rooms,
	}
}

// FromSnapshot собирает полное состояние сессии
func FromSnapshot(sessionID string, d domain.BookingDraft, av domain.AvailabilityState) *SessionStateResponse {
	return &SessionStateResponse{
		SessionID:    sessionID,
		Draft:        FromDomainDraft(d),
		Availability: FromDomainAvailability(av),
	}
}
