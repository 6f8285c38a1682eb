package models

// ClassSession represents a scheduled class on the timetable.
type ClassSession struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	ClassDate       string `json:"class_date"` // YYYY-MM-DD
	StartTime       string `json:"start_time"` // HH:MM:SS
	DurationMinutes int    `json:"duration_minutes"`
	TrainerID       string `json:"trainer_id"`
	Capacity        int    `json:"capacity"`
	AvailableSlots  int    `json:"available_slots"`
	PlanRequirement string `json:"plan_requirement"`
}
