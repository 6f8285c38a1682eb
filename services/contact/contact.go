// Package contact handles contact-form inquiries: immutable messages,
// listed newest first for the admin dashboard.
package contact

import (
	"context"
	"fmt"
	"time"

	"gymrat/database"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/models"
)

// ContactService stores and lists contact-form messages.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (string, error)
	// ListNewestFirst returns every message, most recent first.
	ListNewestFirst(ctx context.Context) ([]models.ContactMessage, error)
}

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Repo recordsRepo.RecordRepository
}

// Submit stores a new inquiry and returns its generated id.
func (s *DefaultContactService) Submit(ctx context.Context, name, email, message string) (string, error) {
	if name == "" || email == "" || message == "" {
		return "", fmt.Errorf("name, email and message are required")
	}
	rec := database.Record{
		"name":       name,
		"email":      email,
		"message":    message,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	}
	id, err := s.Repo.Insert(ctx, database.CollectionContactMessages, rec)
	if err != nil {
		return "", fmt.Errorf("failed to store message: %w", err)
	}
	return id, nil
}

// ListNewestFirst returns every message ordered by creation time
// descending.
func (s *DefaultContactService) ListNewestFirst(ctx context.Context) ([]models.ContactMessage, error) {
	recs, err := s.Repo.ListAll(ctx, database.CollectionContactMessages, recordsRepo.ListOptions{
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	out := make([]models.ContactMessage, 0, len(recs))
	for _, rec := range recs {
		var msg models.ContactMessage
		if err := database.DecodeRecord(rec, &msg); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}
