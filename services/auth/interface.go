package auth

import (
	"context"
	"sync"

	recordsRepo "gymrat/database/repository/records"
	"gymrat/models"

	"gymrat/database"

	"github.com/go-redis/redis/v8"
)

// AuthResponse carries the signed-in identity, its resolved role and the
// session token.
type AuthResponse struct {
	Identity models.Identity `json:"identity"`
	Role     string          `json:"role"`
	Token    string          `json:"token"`
}

// Listener receives the new identity on every session change; nil means
// signed out.
type Listener func(*models.Identity)

// SessionService defines the session and profile operations the pages rely
// on. Sign-in silently creates an account for an unknown email
// (auto-registration); that is documented behaviour, not an error path.
type SessionService interface {
	SignUp(ctx context.Context, name, email, password, plan string) (*AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*AuthResponse, error)
	// SignOut clears the session. The token of the session being closed
	// may be empty when only the process-wide session should be cleared.
	SignOut(ctx context.Context, token string) error
	// CurrentUser returns the active identity, or nil when signed out.
	CurrentUser(ctx context.Context) (*models.Identity, error)
	// Subscribe registers a listener, invokes it immediately with the
	// current identity, and returns a function that removes it again.
	Subscribe(fn Listener) (unsubscribe func())
	// GetProfile fetches the stored profile; absence is reported through
	// the ok flag.
	GetProfile(ctx context.Context, userID string) (*models.User, bool, error)
	// UpdateDisplayName renames the member, in the profile and in the
	// active session if it belongs to them.
	UpdateDisplayName(ctx context.Context, userID, name string) error
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Repo  recordsRepo.RecordRepository
	Store *database.Store
	// Cache mirrors session records into Redis for the auth middleware;
	// nil disables the mirror.
	Cache *redis.Client

	mu        sync.Mutex
	current   *models.Identity
	restored  bool
	listeners map[int]Listener
	nextID    int
}
