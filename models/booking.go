package models

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
)

// Booking links a member to a reserved class session.
type Booking struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ClassID   string `json:"class_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}
