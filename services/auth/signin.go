package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gymrat/database"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/models"
	"gymrat/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func displayNameFromEmail(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}

// SignIn resolves an email to a member and opens a session. An unknown
// email silently creates the account (auto-registration). The admin
// allowlist always wins over the stored role: signing in with a reserved
// address re-asserts role admin even if a prior record held something else.
func (s *DefaultSessionService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("a valid email address is required")
	}

	users, err := s.Repo.ListAll(ctx, database.CollectionUsers, recordsRepo.ListOptions{})
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to list members", zap.Error(err))
		return nil, fmt.Errorf("authorization failed, please try again")
	}

	var uid string
	var profile database.Record
	for _, rec := range users {
		if stored, _ := rec["email"].(string); stored == email {
			uid, _ = rec["id"].(string)
			profile = rec
			break
		}
	}

	switch {
	case uid == "":
		// Auto-registration.
		uid = uuid.NewString()
		name := displayNameFromEmail(email)
		role := models.RoleUser
		if isAdminEmail(email) {
			role = models.RoleAdmin
			name = "Admin User"
		}
		profile = database.Record{
			"name":              name,
			"email":             email,
			"role":              role,
			"membership_status": "active",
			"membership_plan":   "basic",
			"join_date":         time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.Repo.Set(ctx, database.CollectionUsers, uid, profile, false); err != nil {
			return nil, fmt.Errorf("authorization failed, please try again")
		}
	case isAdminEmail(email) && profile["role"] != models.RoleAdmin:
		fields := database.Record{"role": models.RoleAdmin, "name": "Admin User"}
		if err := s.Repo.Update(ctx, database.CollectionUsers, uid, fields); err != nil {
			return nil, fmt.Errorf("authorization failed, please try again")
		}
		for k, v := range fields {
			profile[k] = v
		}
	}

	name, _ := profile["name"].(string)
	role, _ := profile["role"].(string)
	ident := models.Identity{ID: uid, Email: email, DisplayName: name}
	if err := s.setCurrent(ctx, &ident); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(uid, email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authorization failed, please try again")
	}
	s.cacheSession(ident, role, token)

	return &AuthResponse{Identity: ident, Role: role, Token: token}, nil
}
