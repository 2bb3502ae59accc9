// internal/store/session/store.go
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
)

// API is the remote auth contract the store depends on
type API interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
}

// TokenSink receives the bearer token for authenticated requests. The HTTP
// client implements it.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

var (
	_ API       = (*api.Client)(nil)
	_ TokenSink = (*api.Client)(nil)
)

// Result reports the outcome of a login or registration attempt
type Result struct {
	Success bool
	Message string
}

// Store holds the authenticated session: the issued token, its expiry and
// the user record. The token's claims are parsed without verification (the
// client has no signing key); expiry is honored locally so Authenticated
// turns false once the token lapses.
type Store struct {
	mu     sync.Mutex
	api    API
	sink   TokenSink
	log    *logrus.Entry
	token  string
	user   api.User
	expiry time.Time
}

// NewStore creates a session store backed by the given remote API
func NewStore(remote API, sink TokenSink, logger *logrus.Logger) *Store {
	return &Store{
		api:  remote,
		sink: sink,
		log:  logger.WithField("store", "session"),
	}
}

// Login authenticates against the backend and installs the issued token on
// the HTTP client
func (s *Store) Login(ctx context.Context, email, password string) Result {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return Result{Message: api.UserMessage(err, "Login failed")}
	}

	s.install(resp)
	return Result{Success: true}
}

// Register creates an account and installs the issued token on the HTTP
// client
func (s *Store) Register(ctx context.Context, name, email, password string) Result {
	resp, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return Result{Message: api.UserMessage(err, "Registration failed")}
	}

	s.install(resp)
	return Result{Success: true}
}

// Logout clears the session and removes the token from the HTTP client.
// Dependent stores (cart) must be reset by the caller.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = api.User{}
	s.expiry = time.Time{}
	s.sink.ClearToken()
}

// Authenticated reports whether a non-expired session is active
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return false
	}
	if !s.expiry.IsZero() && time.Now().After(s.expiry) {
		return false
	}
	return true
}

// IsAdmin reports whether the session user has admin rights
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user.IsAdmin
}

// User returns the session user record
func (s *Store) User() api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) install(resp *api.AuthResponse) {
	expiry := tokenExpiry(resp.Token)
	if expiry.IsZero() {
		s.log.Debug("Token carries no expiry claim")
	}

	s.mu.Lock()
	s.token = resp.Token
	s.user = resp.User
	s.expiry = expiry
	s.mu.Unlock()

	s.sink.SetToken(resp.Token)
}

// tokenExpiry extracts the exp claim without verifying the signature
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
