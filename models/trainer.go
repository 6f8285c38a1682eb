package models

// Trainer represents a coach on the gym roster. Seed data; read-only.
type Trainer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
