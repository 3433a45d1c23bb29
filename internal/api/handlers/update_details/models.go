package update_details

// UpdateDetailsRequest HTTP request model.
// nil-поле означает "не менять".
type UpdateDetailsRequest struct {
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}
