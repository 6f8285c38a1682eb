package models

// Payment statuses.
const (
	PaymentCompleted = "completed"
)

// Payment is one row of a member's immutable payment ledger.
type Payment struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"payment_date"` // RFC 3339
}
