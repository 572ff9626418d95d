package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// SessionClaims carry the validated content of a session token: the numeric
// subject id plus the issue and expiry instants. A token is the sole session
// artifact, there is no server side session record behind it.
type SessionClaims struct {
	jwt.RegisteredClaims
	subjectID int64
}

// SubjectID returns the principal id the token was issued for.
func (c *SessionClaims) SubjectID() int64 {
	return c.subjectID
}

// IssuedTime returns the issue instant.
func (c *SessionClaims) IssuedTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ExpiryTime returns the expiry instant.
func (c *SessionClaims) ExpiryTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenCodecImpl implements the TokenCodec interface with HMAC signed JWTs.
type TokenCodecImpl struct {
	signingKey []byte
	ttl        time.Duration
	logger     Logger
}

// NewTokenCodec creates a TokenCodec. The signing key and TTL are process
// wide configuration, loaded once at startup and immutable afterwards.
func NewTokenCodec(signingKey []byte, ttl time.Duration, logger Logger) (*TokenCodecImpl, error) {
	if len(signingKey) == 0 {
		return nil, errors.New("signing key must not be empty", errors.CategoryBadInput)
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive", errors.CategoryBadInput)
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenCodecImpl{
		signingKey: signingKey,
		ttl:        ttl,
		logger:     logger,
	}, nil
}

var _ TokenCodec = (*TokenCodecImpl)(nil)

// Issue signs a token for the given subject at the given instant. Every call
// gets a fresh jti, two tokens for the same subject never compare equal.
func (tc *TokenCodecImpl) Issue(subjectID int64, now time.Time) (string, error) {
	if subjectID < 1 {
		return "", errors.New("subject id must be positive", errors.CategoryBadInput)
	}

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(tc.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign session token")
	}

	return signed, nil
}

// Parse verifies the signature and time bounds of a token and extracts its
// claims. The signature check strictly precedes any use of the payload: a
// tampered token fails with ErrTokenInvalid even when its claims look sane.
func (tc *TokenCodecImpl) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			tc.logger.Error("token parse rejected unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tc.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrTokenInvalid
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		tc.logger.Error("token parse could not decode validated claims")
		return nil, ErrTokenInvalid
	}

	subjectID, err := strconv.ParseInt(claims.RegisteredClaims.Subject, 10, 64)
	if err != nil || subjectID < 1 {
		return nil, ErrTokenInvalid
	}
	claims.subjectID = subjectID

	return claims, nil
}

// TTL returns the configured token lifetime.
func (tc *TokenCodecImpl) TTL() time.Duration {
	return tc.ttl
}
