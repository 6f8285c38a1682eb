package booking

import (
	"context"
	"fmt"
	"time"

	"gymrat/database"
	"gymrat/database/query"
	"gymrat/models"
	"gymrat/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Schedule lists classes with open slots, ordered by class date then start
// time, with the trainer joined in.
func (s *DefaultBookingService) Schedule(ctx context.Context) ([]ClassInfo, error) {
	res, err := query.From(s.Store, database.CollectionClasses).
		Select("*, trainers(name)").
		Gt("available_slots", 0).
		Order("class_date", true).
		Order("start_time", true).
		Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	out := make([]ClassInfo, 0, len(res.Data))
	for _, rec := range res.Data {
		var info ClassInfo
		if err := database.DecodeRecord(rec, &info.ClassSession); err != nil {
			return nil, err
		}
		info.TrainerName = "Unknown Trainer"
		if trainer, ok := rec[database.CollectionTrainers].(database.Record); ok {
			if name, ok := trainer["name"].(string); ok && name != "" {
				info.TrainerName = name
			}
		}
		out = append(out, info)
	}
	return out, nil
}

// Reserve books a class for a member. The duplicate pre-check, the insert
// and the slot decrement all happen inside one read-modify-write cycle of
// the store, so the uniqueness and capacity invariants hold even with
// interleaved requests against this process.
func (s *DefaultBookingService) Reserve(ctx context.Context, userID, classID string) (*models.Booking, error) {
	if userID == "" || classID == "" {
		return nil, fmt.Errorf("a member and a class are required")
	}

	booking := models.Booking{
		ID:        uuid.NewString(),
		UserID:    userID,
		ClassID:   classID,
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := s.Store.Update(ctx, func(doc *database.Document) error {
		for _, rec := range doc.Bookings {
			if database.Equal(rec["class_id"], classID) && database.Equal(rec["user_id"], userID) {
				return DuplicateBookingError{ClassID: classID}
			}
		}

		var class database.Record
		for _, rec := range doc.Classes {
			if database.Equal(rec["id"], classID) {
				class = rec
				break
			}
		}
		if class == nil {
			return ClassNotFoundError{ClassID: classID}
		}
		if database.Compare(class["available_slots"], 0) <= 0 {
			return ClassFullError{ClassID: classID}
		}

		rec, err := database.ToRecord(booking)
		if err != nil {
			return err
		}
		doc.Append(database.CollectionBookings, rec)

		slots, _ := class["available_slots"].(float64)
		class["available_slots"] = slots - 1
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking confirmed",
		zap.String("userID", userID), zap.String("classID", classID))
	return &booking, nil
}

// ListForUser returns a member's bookings newest first, with class details
// joined in.
func (s *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]BookingInfo, error) {
	res, err := query.From(s.Store, database.CollectionBookings).
		Select("*, classes(name, type, class_date, start_time)").
		Eq("user_id", userID).
		Order("created_at", false).
		Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	out := make([]BookingInfo, 0, len(res.Data))
	for _, rec := range res.Data {
		var info BookingInfo
		if err := database.DecodeRecord(rec, &info.Booking); err != nil {
			return nil, err
		}
		if class, ok := rec[database.CollectionClasses].(database.Record); ok {
			if err := database.DecodeRecord(class, &info.Class); err != nil {
				return nil, err
			}
		}
		out = append(out, info)
	}
	return out, nil
}
