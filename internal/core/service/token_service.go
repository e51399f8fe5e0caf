package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// DefaultTestUserID is the designated demo account. It may authenticate and
// read, but profile-mutation routes refuse it.
const DefaultTestUserID = "6425dda09222784de0f5e6c0"

// TokenService issues and verifies HS256 session tokens. The payload carries
// only the principal identifier (subject) and an expiry; verification is
// stateless.
type TokenService struct {
	secret     []byte
	ttl        time.Duration
	testUserID string
	now        func() time.Time
}

func NewTokenService(secret string, ttl time.Duration, testUserID string) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if testUserID == "" {
		testUserID = DefaultTestUserID
	}
	return &TokenService{
		secret:     []byte(secret),
		ttl:        ttl,
		testUserID: testUserID,
		now:        time.Now,
	}
}

func (s *TokenService) Issue(principalID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   principalID,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify returns the principal identifier embedded in token. Malformed,
// expired and mis-signed tokens all fail with the same domain.ErrAuthentication
// so the caller cannot learn why a token was rejected.
func (s *TokenService) Verify(token string) (string, bool, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", false, domain.ErrAuthentication
	}
	return claims.Subject, claims.Subject == s.testUserID, nil
}
