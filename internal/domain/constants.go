package domain

// Default draft values
const (
	DefaultGuestCount = 1

	// DefaultMaxGuestsAllowed потолок числа гостей, когда не выбрана ни одна комната
	DefaultMaxGuestsAllowed = 10
)

// Business validation constants
const (
	MaxSpecialRequestsLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// User-facing alert messages.
// Текст согласован с фронтендом, менять только вместе с UI.
const (
	MsgMissingRequiredFields = "Please fill in all required fields: dates, hotel, and rooms."
	MsgSubmitSuccess         = "Booking request submitted successfully!"
	MsgSubmitFailure         = "Failed to submit booking request. Please try again."
)
