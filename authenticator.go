package auth

import (
	"context"
	"time"
)

// Auther orchestrates the credential check and token issuance. It keeps no
// per-request state of its own, a single instance serves concurrent requests.
type Auther struct {
	verifier CredentialVerifier
	codec    TokenCodec
	logger   Logger
	now      func() time.Time
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(verifier CredentialVerifier, codec TokenCodec) *Auther {
	return &Auther{
		verifier: verifier,
		codec:    codec,
		logger:   defLogger{},
		now:      time.Now,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithClock injects a custom clock (useful for tests).
func (s *Auther) WithClock(clock func() time.Time) *Auther {
	if clock != nil {
		s.now = clock
	}
	return s
}

var _ Authenticator = (*Auther)(nil)

// Login verifies the credentials, issues a session token for the resolved
// principal and binds the principal into the request's identity scope so the
// login response handler can read it. No server side session is created.
func (s *Auther) Login(ctx context.Context, username, password string) (string, error) {
	principal, err := s.verifier.VerifyCredentials(ctx, username, password)
	if err != nil {
		s.logger.Error("Login verify credentials error", "username", username, "error", err)
		return "", err
	}

	token, err := s.codec.Issue(principal.ID(), s.now())
	if err != nil {
		s.logger.Error("Login token issuance error", "error", err)
		return "", err
	}

	if !BindPrincipal(ctx, principal) {
		s.logger.Debug("Login context has no identity scope, principal not bound")
	}

	return token, nil
}

// Logout clears the request's identity scope. Calling it with nothing bound
// is a no-op, never an error.
func (s *Auther) Logout(ctx context.Context) {
	ClearPrincipal(ctx)
	s.logger.Debug("cleared authentication context")
}
