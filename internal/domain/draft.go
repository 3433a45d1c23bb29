package domain

import "time"

// DraftStatus represents the submission state of a booking draft
type DraftStatus string

const (
	StatusIdle       DraftStatus = "idle"
	StatusSubmitting DraftStatus = "submitting"
)

// AlertKind вид пользовательского уведомления
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// Alert user-facing outcome banner tied to the draft
type Alert struct {
	Kind    AlertKind
	Message string
}

// BookingDraft is the single mutable record of a guest booking session:
// criteria, room selection, derived occupancy ceiling and submission state.
// Один экземпляр на сессию, мутируется только под блокировкой сессии.
type BookingDraft struct {
	CheckInDate      *time.Time
	CheckOutDate     *time.Time
	HotelID          string // пустая строка = отель не выбран
	SelectedRoomIDs  []string
	GuestCount       int
	MaxGuestsAllowed int
	SpecialRequests  string
	Status           DraftStatus
	LastAlert        *Alert
}

// NewBookingDraft создает черновик с дефолтными значениями
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		SelectedRoomIDs:  []string{},
		GuestCount:       DefaultGuestCount,
		MaxGuestsAllowed: DefaultMaxGuestsAllowed,
		Status:           StatusIdle,
	}
}

// Clear resets every field to its default value
func (d *BookingDraft) Clear() {
	d.CheckInDate = nil
	d.CheckOutDate = nil
	d.HotelID = ""
	d.SelectedRoomIDs = []string{}
	d.GuestCount = DefaultGuestCount
	d.MaxGuestsAllowed = DefaultMaxGuestsAllowed
	d.SpecialRequests = ""
	d.Status = StatusIdle
	d.LastAlert = nil
}

// IsSubmitting returns true while a reservation request is in flight
func (d *BookingDraft) IsSubmitting() bool {
	return d.Status == StatusSubmitting
}

// HasCompleteCriteria returns true when hotel and both dates are set,
// i.e. the draft describes a full availability window
func (d *BookingDraft) HasCompleteCriteria() bool {
	return d.HotelID != "" && d.CheckInDate != nil && d.CheckOutDate != nil
}

// HasSelectedRoom returns true if the room is currently selected
func (d *BookingDraft) HasSelectedRoom(roomID string) bool {
	for _, id := range d.SelectedRoomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}

// ToggleRoom adds the room to the selection if absent, removes it if present.
// Два последовательных вызова с одним id возвращают выбор в исходное состояние.
func (d *BookingDraft) ToggleRoom(roomID string) {
	for i, id := range d.SelectedRoomIDs {
		if id == roomID {
			d.SelectedRoomIDs = append(d.SelectedRoomIDs[:i], d.SelectedRoomIDs[i+1:]...)
			return
		}
	}
	d.SelectedRoomIDs = append(d.SelectedRoomIDs, roomID)
}

// PruneSelection drops selected rooms that are absent from the given
// availability result. Вызывается при каждом применении нового результата,
// включая пустой.
func (d *BookingDraft) PruneSelection(available []Room) {
	kept := make([]string, 0, len(d.SelectedRoomIDs))
	for _, id := range d.SelectedRoomIDs {
		for _, room := range available {
			if room.ID == id {
				kept = append(kept, id)
				break
			}
		}
	}
	d.SelectedRoomIDs = kept
}

// RecomputeMaxGuests derives the occupancy ceiling: the sum of MaxOccupancy
// over selected rooms present in the latest availability result, or the
// default ceiling when nothing is selected.
func (d *BookingDraft) RecomputeMaxGuests(available []Room) {
	if len(d.SelectedRoomIDs) == 0 {
		d.MaxGuestsAllowed = DefaultMaxGuestsAllowed
		return
	}

	total := 0
	for _, id := range d.SelectedRoomIDs {
		for _, room := range available {
			if room.ID == id {
				total += room.MaxOccupancy
				break
			}
		}
	}
	d.MaxGuestsAllowed = total
}

// MissingForSubmission returns the required fields that are still empty.
// guestCount и specialRequests не обязательны никогда.
func (d *BookingDraft) MissingForSubmission() []string {
	missing := make([]string, 0, 4)
	if d.CheckInDate == nil {
		missing = append(missing, "checkInDate")
	}
	if d.CheckOutDate == nil {
		missing = append(missing, "checkOutDate")
	}
	if d.HotelID == "" {
		missing = append(missing, "hotelId")
	}
	if len(d.SelectedRoomIDs) == 0 {
		missing = append(missing, "rooms")
	}
	return missing
}

// BuildReservationRequest собирает payload для POST /reservations.
// Вызывать только для черновика, прошедшего MissingForSubmission.
func (d *BookingDraft) BuildReservationRequest() ReservationRequest {
	rooms := make([]string, len(d.SelectedRoomIDs))
	copy(rooms, d.SelectedRoomIDs)

	return ReservationRequest{
		CheckInDate:     d.CheckInDate.Format(DateFormat),
		CheckOutDate:    d.CheckOutDate.Format(DateFormat),
		HotelID:         d.HotelID,
		RoomIDs:         rooms,
		Guests:          d.GuestCount,
		SpecialRequests: d.SpecialRequests,
	}
}

// Snapshot returns a deep copy of the draft safe to use outside the session lock
func (d *BookingDraft) Snapshot() BookingDraft {
	out := *d

	out.SelectedRoomIDs = make([]string, len(d.SelectedRoomIDs))
	copy(out.SelectedRoomIDs, d.SelectedRoomIDs)

	if d.CheckInDate != nil {
		in := *d.CheckInDate
		out.CheckInDate = &in
	}
	if d.CheckOutDate != nil {
		outDate := *d.CheckOutDate
		out.CheckOutDate = &outDate
	}
	if d.LastAlert != nil {
		alert := *d.LastAlert
		out.LastAlert = &alert
	}

	return out
}

// ReservationRequest is the write-only payload sent to the backend
// when the guest submits the draft
type ReservationRequest struct {
	CheckInDate     string
	CheckOutDate    string
	HotelID         string
	RoomIDs         []string
	Guests          int
	SpecialRequests string
}
