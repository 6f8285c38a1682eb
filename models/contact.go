package models

// ContactMessage is an inquiry submitted through the contact form.
// Immutable once created.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"` // RFC 3339
}
