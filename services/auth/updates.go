package auth

import (
	"context"
	"fmt"

	"gymrat/database"
	"gymrat/models"
)

// GetProfile fetches the stored profile for a member. A missing profile is
// reported through the ok flag, never as an error.
func (s *DefaultSessionService) GetProfile(ctx context.Context, userID string) (*models.User, bool, error) {
	rec, ok, err := s.Repo.Get(ctx, database.CollectionUsers, userID)
	if err != nil || !ok {
		return nil, false, err
	}
	var profile models.User
	if err := database.DecodeRecord(rec, &profile); err != nil {
		return nil, false, err
	}
	return &profile, true, nil
}

// UpdateDisplayName renames the member in their stored profile and, when
// the active session belongs to them, in the session identity as well so
// listeners observe the change.
func (s *DefaultSessionService) UpdateDisplayName(ctx context.Context, userID, name string) error {
	if name == "" {
		return fmt.Errorf("a display name is required")
	}
	if err := s.Repo.Set(ctx, database.CollectionUsers, userID, database.Record{"name": name}, true); err != nil {
		return err
	}

	if err := s.restore(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current == nil || current.ID != userID {
		return nil
	}
	renamed := *current
	renamed.DisplayName = name
	return s.setCurrent(ctx, &renamed)
}
