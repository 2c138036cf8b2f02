package models

import "time"

// User mirrors the users table; password hash never leaves the handlers.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // guest / host
	Status   string `json:"status"`
}

// HostApplication is a become-a-host submission awaiting review.
type HostApplication struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PropertyName  string    `json:"property_name"`
	PropertyType  string    `json:"property_type"`
	Village       string    `json:"village"`
	District      string    `json:"district"`
	State         string    `json:"state"`
	Description   string    `json:"description"`
	Guests        int       `json:"guests"`
	Rooms         int       `json:"rooms"`
	PricePerNight int64     `json:"price_per_night"`
	Amenities     []string  `json:"amenities"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
