// Package auth implements the single-admin credential check and the signed
// session tokens carried in the auth cookie.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bcheng/portfolio-backend/config"
	"github.com/bcheng/portfolio-backend/errs"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "auth_token"

// Sessions validates the configured admin credential pair and mints and
// verifies HS256-signed session tokens with an explicit expiry. There is
// exactly one shared admin identity: no users table, no roles.
type Sessions struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

func NewSessions(cfg *config.Config) (*Sessions, error) {
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret is required")
	}

	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = generated
	}

	return &Sessions{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		secret:       []byte(cfg.SessionSecret),
		ttl:          cfg.SessionTTL,
	}, nil
}

// VerifyCredentials compares a submitted pair against the configured admin
// identity.
func (s *Sessions) VerifyCredentials(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}

// Mint issues a signed token for the admin identity, valid for the session
// TTL.
func (s *Sessions) Mint(now time.Time) (token string, expires time.Time, err error) {
	expires = now.Add(s.ttl)
	claims := &jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Validate checks signature and expiry and returns the token subject. The
// session is only as valid as its signature; cookie presence alone proves
// nothing.
func (s *Sessions) Validate(token string) (string, error) {
	if token == "" {
		return "", errs.NewMissingTokenError()
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.NewExpiredTokenError()
		}
		return "", errs.NewInvalidTokenError()
	}
	if !parsed.Valid {
		return "", errs.NewInvalidTokenError()
	}

	return claims.Subject, nil
}
