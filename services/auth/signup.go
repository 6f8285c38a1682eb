package auth

import (
	"context"
	"fmt"
	"time"

	"gymrat/database"
	"gymrat/models"
	"gymrat/utils"

	"github.com/google/uuid"
)

const sessionTokenTTL = 24 * time.Hour

// SignUp creates a new Identity and Profile pair and opens a session for
// it. Any password is accepted; credentials are not verified anywhere in
// this system.
func (s *DefaultSessionService) SignUp(ctx context.Context, name, email, password, plan string) (*AuthResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("a valid email address is required")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if name == "" {
		name = displayNameFromEmail(email)
	}
	if plan == "" {
		plan = "basic"
	}

	role := models.RoleUser
	if isAdminEmail(email) {
		role = models.RoleAdmin
	}

	uid := uuid.NewString()
	profile := database.Record{
		"name":              name,
		"email":             email,
		"role":              role,
		"membership_status": "active",
		"membership_plan":   plan,
		"join_date":         time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Repo.Set(ctx, database.CollectionUsers, uid, profile, false); err != nil {
		return nil, fmt.Errorf("failed to create member profile: %w", err)
	}

	ident := models.Identity{ID: uid, Email: email, DisplayName: name}
	if err := s.setCurrent(ctx, &ident); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(uid, email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("enlistment failed, please try again")
	}
	s.cacheSession(ident, role, token)

	return &AuthResponse{Identity: ident, Role: role, Token: token}, nil
}
