// Package session holds the process-wide authentication state: the
// bearer token and the authenticated user's profile. It is the only
// writer of that state; every view reads from it.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/internal/errs"
	"github.com/bookbuddy/library-client/internal/model"
)

type Session struct {
	api   AuthAPI
	store Store
	log   *zap.Logger

	mu    sync.RWMutex
	token string
	user  *model.User
}

// New restores a previously persisted token, if any. The restored token
// is trusted speculatively; call Hydrate to validate it and load the
// profile.
func New(api AuthAPI, store Store, log *zap.Logger) *Session {
	s := &Session{
		api:   api,
		store: store,
		log:   log.Named("session"),
	}
	token, err := store.Load()
	if err != nil {
		s.log.Warn("restore token", zap.Error(err))
		return s
	}
	s.token = token
	return s
}

// Hydrate fetches the profile for a restored token. An expired or
// invalid token clears the session, so a stale credential never lingers.
func (s *Session) Hydrate(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrAuth) {
			s.log.Info("restored token rejected, clearing session")
			s.Logout()
		}
		return err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

func (s *Session) Login(ctx context.Context, email, password string) error {
	auth, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.begin(auth)
	return nil
}

func (s *Session) Register(ctx context.Context, firstName, lastName, email, password string) error {
	auth, err := s.api.Register(ctx, firstName, lastName, email, password)
	if err != nil {
		return err
	}
	s.begin(auth)
	return nil
}

// Logout clears the session in memory and in the store. It cannot fail:
// a store error is logged and the in-memory state is cleared regardless.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.store.Clear(); err != nil {
		s.log.Warn("clear token store", zap.Error(err))
	}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) begin(auth model.AuthResponse) {
	s.mu.Lock()
	s.token = auth.Token
	user := auth.User
	s.user = &user
	s.mu.Unlock()
	if err := s.store.Save(auth.Token); err != nil {
		s.log.Warn("persist token", zap.Error(err))
	}
}
