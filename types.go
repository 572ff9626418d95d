package auth

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context)
}

// IdentityResolver re-hydrates principals from stored identities
type IdentityResolver interface {
	ResolveByUsername(ctx context.Context, username string) (*Principal, error)
	ResolveByID(ctx context.Context, id int64) (*Principal, error)
}

// CredentialVerifier checks a username and password pair against the store
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (*Principal, error)
}

// TokenCodec signs and parses compact session tokens
type TokenCodec interface {
	Issue(subjectID int64, now time.Time) (string, error)
	Parse(token string) (*SessionClaims, error)
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetTokenTTL() time.Duration
	GetAuthScheme() string
	GetContextKey() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
