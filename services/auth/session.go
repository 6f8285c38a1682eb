package auth

import (
	"context"

	"gymrat/models"
	"gymrat/utils"

	"go.uber.org/zap"
)

// The two administrator addresses always resolve to role admin, re-applied
// on every sign-in regardless of what the stored record says.
var adminEmails = map[string]bool{
	"admin@gym.com":   true,
	"admin@gmail.com": true,
}

func isAdminEmail(email string) bool {
	return adminEmails[email]
}

// restore loads the persisted session identity once, so a restarted process
// resumes where the last one signed off.
func (s *DefaultSessionService) restore(ctx context.Context) error {
	s.mu.Lock()
	restored := s.restored
	s.mu.Unlock()
	if restored {
		return nil
	}
	ident, err := s.Store.LoadSession(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if !s.restored {
		s.current = ident
		s.restored = true
	}
	s.mu.Unlock()
	return nil
}

// CurrentUser returns the active identity, or nil when signed out.
func (s *DefaultSessionService) CurrentUser(ctx context.Context) (*models.Identity, error) {
	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, nil
}

// Subscribe registers a listener and invokes it immediately with the
// current identity. The returned function removes the listener from the
// registry; dropping it leaks the registration.
func (s *DefaultSessionService) Subscribe(fn Listener) func() {
	s.mu.Lock()
	if s.listeners == nil {
		s.listeners = map[int]Listener{}
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// setCurrent swaps the active identity, persists it, and notifies every
// listener synchronously with the new value.
func (s *DefaultSessionService) setCurrent(ctx context.Context, ident *models.Identity) error {
	var err error
	if ident == nil {
		err = s.Store.ClearSession(ctx)
	} else {
		err = s.Store.SaveSession(ctx, ident)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = ident
	s.restored = true
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ident)
	}
	return nil
}

// cacheSession mirrors the session record into Redis, keyed by the token
// hash. Best effort: a cache failure is logged, not surfaced.
func (s *DefaultSessionService) cacheSession(ident models.Identity, role, token string) {
	if s.Cache == nil {
		return
	}
	session := utils.AuthSession{
		UserID:      ident.ID,
		Email:       ident.Email,
		DisplayName: ident.DisplayName,
		Role:        role,
	}
	if err := utils.SaveAuthSession(s.Cache, utils.HashToken(token), session); err != nil {
		utils.GetLogger().Warn("failed to cache auth session", zap.Error(err))
	}
}

// SignOut clears the session and notifies listeners with nil.
func (s *DefaultSessionService) SignOut(ctx context.Context, token string) error {
	if s.Cache != nil && token != "" {
		if err := utils.DeleteAuthSession(s.Cache, utils.HashToken(token)); err != nil {
			utils.GetLogger().Warn("failed to drop cached auth session", zap.Error(err))
		}
	}
	return s.setCurrent(ctx, nil)
}
