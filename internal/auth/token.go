package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSubject = errors.New("token has no subject")
)

// DefaultTokenTTL bounds access token validity when no TTL is configured.
const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies signed, time-limited bearer tokens.
// The signing secret is fixed at construction and immutable afterwards;
// rotating it invalidates every previously issued token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with an explicit secret and TTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs an HS256 token asserting the subject, expiring after the TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the token's subject.
// All decode failures (bad signature, malformed structure, expired) collapse
// into ErrInvalidToken so callers cannot probe which check rejected a token.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}
