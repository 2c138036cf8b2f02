package models

// Location pins a homestay to its village.
type Location struct {
	Village  string `json:"village"`
	District string `json:"district"`
	State    string `json:"state"`
}

// Review is a guest review attached to a homestay.
type Review struct {
	ID         string `json:"id"`
	HomestayID string `json:"homestay_id"`
	UserName   string `json:"user_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}

// Homestay is a bookable catalog entry. Read-only for the booking flow.
type Homestay struct {
	ID          string   `json:"id"`
	HostID      string   `json:"host_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	PerNight    int64    `json:"per_night"` // whole rupees
	Currency    string   `json:"currency"`
	MaxGuests   int      `json:"max_guests"`
	Rooms       int      `json:"rooms"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
}
