package domain

// FetchStatus represents the lifecycle of an async fetch against the backend
type FetchStatus string

const (
	FetchNotStarted FetchStatus = "not_started"
	FetchLoading    FetchStatus = "loading"
	FetchLoaded     FetchStatus = "loaded"
	FetchFailed     FetchStatus = "failed"
)

// AvailabilityState holds the latest room availability result for a booking
// session together with the sequence number of the query that produced it.
// Ответы применяются строго в порядке выдачи номеров: ответ со старым
// номером отбрасывается, даже если пришёл позже нового.
type AvailabilityState struct {
	Status FetchStatus
	Rooms  []Room
	Seq    uint64
}

// NewAvailabilityState возвращает начальное состояние (запрос не выдавался)
func NewAvailabilityState() AvailabilityState {
	return AvailabilityState{
		Status: FetchNotStarted,
		Rooms:  []Room{},
	}
}

// RoomByID returns the room with the given id from the latest result
func (s AvailabilityState) RoomByID(id string) (Room, bool) {
	for _, room := range s.Rooms {
		if room.ID == id {
			return room, true
		}
	}
	return Room{}, false
}

// IsLoading returns true while a query is in flight
func (s AvailabilityState) IsLoading() bool {
	return s.Status == FetchLoading
}
