package auth

import (
	"errors"
	"fmt"

	"github.com/dimko/miniblog/internal/config"
	"github.com/dimko/miniblog/internal/database/users"
	"github.com/dimko/miniblog/internal/entities"
)

var (
	// ErrUnauthenticated signals a failed login. A missing user and a wrong
	// password both return this same error so the two cases cannot be told
	// apart from outside.
	ErrUnauthenticated = errors.New("incorrect username or password")

	// ErrUnauthorized signals a rejected bearer token, whatever the cause.
	ErrUnauthorized = errors.New("could not validate credentials")
)

// UserStore is the slice of the credential store the service depends on.
type UserStore interface {
	Create(username, passwordHash string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
}

// Service combines the credential store, the password hasher and the token
// service into the login and request-authorization operations.
type Service struct {
	users      UserStore
	tokens     *TokenService
	iterations int
}

// NewService creates an authentication service. The signing secret and TTL
// come from explicit configuration, not ambient state, so tests can run
// with distinct secrets.
func NewService(store UserStore, cfg config.Auth) *Service {
	return &Service{
		users:      store,
		tokens:     NewTokenService([]byte(cfg.Secret), cfg.TokenTTL),
		iterations: cfg.PBKDF2Iterations,
	}
}

// Tokens exposes the token service for handlers that issue tokens directly.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register hashes the password and inserts a new user. Duplicate usernames
// are not rejected; lookups resolve to the earliest matching row.
func (s *Service) Register(username, password string) (*entities.User, error) {
	passwordHash, err := HashPassword(password, s.iterations)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(username, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates a username/password pair and returns the user.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

// ResolveUser verifies a bearer token and loads the user it asserts. Any
// failure along the way (bad signature, malformed token, expiry, subject
// that no longer resolves to a user) collapses into ErrUnauthorized.
func (s *Service) ResolveUser(rawToken string) (*entities.User, error) {
	subject, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByUsername(subject)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}
