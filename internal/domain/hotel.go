package domain

// Hotel represents a bookable property from the hotel platform catalog
type Hotel struct {
	ID   string
	Name string
}

// Room represents a bookable unit within a hotel.
// A Room value is only meaningful within the availability window
// (hotel, check-in, check-out) it was fetched for.
type Room struct {
	ID           string
	RoomNumber   string
	RoomType     string
	MaxOccupancy int
}
