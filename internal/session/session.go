// Package session holds the signed-in user and bearer token. A Session is
// created once at startup, restored from a Store, and passed explicitly to
// everything that needs to authenticate.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wexinc/offerdesk/internal/api"
	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/logging"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
}

// Session is the authentication context. It is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	state *State

	store  Store
	auth   Authenticator
	logger *logging.Logger
	now    func() time.Time
}

// New creates an empty session. Call Restore to load stored state.
func New(store Store, auth Authenticator, logger *logging.Logger) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	if logger == nil {
		logger = logging.Global()
	}
	return &Session{
		store:  store,
		auth:   auth,
		logger: logger,
		now:    time.Now,
	}
}

// Open creates a session and restores it from store.
func Open(store Store, auth Authenticator, logger *logging.Logger) (*Session, error) {
	s := New(store, auth, logger)
	if err := s.Restore(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restore replaces the in-memory state with what the store holds.
func (s *Session) Restore() error {
	state, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	if state != nil {
		s.logger.Debug("session restored", "user", state.User.Email)
	}
	return nil
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return ""
	}
	return s.state.Token
}

// User returns the signed-in user.
func (s *Session) User() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return api.User{}, false
	}
	return s.state.User, true
}

// ExpiresAt returns the token's exp claim. Opaque tokens and JWTs without exp
// report false.
func (s *Session) ExpiresAt() (time.Time, bool) {
	return tokenExpiry(s.Token())
}

// Authenticated reports whether there is a token that has not expired.
func (s *Session) Authenticated() bool {
	return s.Require() == nil
}

// Require returns an error explaining why the session is unusable, or nil.
func (s *Session) Require() error {
	token := s.Token()
	if token == "" {
		return apperrors.NotLoggedIn()
	}
	if exp, ok := tokenExpiry(token); ok && !s.now().Before(exp) {
		return apperrors.SessionExpired(exp)
	}
	return nil
}

// Login authenticates against the API, persists the result and makes it the
// current session.
func (s *Session) Login(ctx context.Context, email, password string) (api.User, error) {
	email = strings.TrimSpace(email)

	fields := apperrors.FieldErrors{}
	if email == "" {
		fields["email"] = "Email is required"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return api.User{}, apperrors.InvalidInput("email and password are required", fields)
	}
	if s.auth == nil {
		return api.User{}, apperrors.New(apperrors.ErrConfig, "session has no authenticator")
	}

	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "user", email, "error", err)
		if errors.Is(err, apperrors.ErrAuth) || errors.Is(err, apperrors.ErrValidation) {
			failed := apperrors.LoginFailed(email, err)
			if inner, ok := apperrors.As(err); ok && inner.Details["server_message"] != "" {
				failed.WithDetails("server_message", inner.Details["server_message"])
			}
			return api.User{}, failed
		}
		return api.User{}, err
	}
	if resp.Token == "" {
		return api.User{}, apperrors.LoginFailed(email, errors.New("response carried no token"))
	}

	state := &State{
		Token:   resp.Token,
		User:    resp.User,
		SavedAt: s.now(),
	}
	if err := s.store.Save(state); err != nil {
		return api.User{}, err
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.logger.Info("logged in", "user", resp.User.Email)
	return resp.User, nil
}

// Logout forgets the session in memory and in the store. Logging out twice is fine.
func (s *Session) Logout() error {
	s.mu.Lock()
	prev := s.state
	s.state = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return err
	}
	if prev != nil {
		s.logger.Info("logged out", "user", prev.User.Email)
	}
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
