package booking

import (
	"context"

	"gymrat/database"
	"gymrat/models"
)

// ClassInfo is a timetable entry with the trainer joined in.
type ClassInfo struct {
	models.ClassSession
	TrainerName string `json:"trainer_name"`
}

// BookingInfo is a member's booking with the class joined in.
type BookingInfo struct {
	models.Booking
	Class models.ClassSession `json:"class"`
}

// BookingService drives the schedule and reservation lifecycle.
type BookingService interface {
	// Schedule lists classes that still have open slots, ordered by date
	// then start time, each with its trainer's name.
	Schedule(ctx context.Context) ([]ClassInfo, error)
	// Reserve books a class for a member. At most one booking may exist
	// per member and class; a repeat attempt fails with
	// DuplicateBookingError before anything is written.
	Reserve(ctx context.Context, userID, classID string) (*models.Booking, error)
	// ListForUser returns a member's bookings, newest first, with class
	// details joined in.
	ListForUser(ctx context.Context, userID string) ([]BookingInfo, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Store *database.Store
}
