package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/auth-service/internal/domain"
)

// Verification failure reasons. Any of them means "unauthenticated"; callers
// must not grant partial trust based on which one occurred.
var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenMalformed   = errors.New("malformed token")
)

// TokenManager issues and verifies signed access tokens. Tokens are stateless:
// validity is determined entirely by the signature and embedded expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager with the given signing secret and default
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the token payload.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue signs a token for the subject using the default TTL.
func (tm *TokenManager) Issue(subjectID string) (string, domain.Token, error) {
	return tm.IssueWithTTL(subjectID, tm.ttl)
}

// IssueWithTTL signs a token expiring at now+ttl. The TTL is taken as given;
// a zero or negative value produces an already-expired token.
func (tm *TokenManager) IssueWithTTL(subjectID string, ttl time.Duration) (string, domain.Token, error) {
	now := time.Now()
	meta := domain.Token{
		SubjectID: subjectID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(meta.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(meta.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", domain.Token{}, err
	}
	return tokenString, meta, nil
}

// Verify recomputes the signature over the claimed payload and checks expiry.
// It returns the subject on success, or exactly one of ErrTokenExpired,
// ErrInvalidSignature, ErrTokenMalformed.
func (tm *TokenManager) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidSignature
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrInvalidSignature):
			return "", ErrInvalidSignature
		default:
			return "", ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
