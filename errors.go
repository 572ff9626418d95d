package auth

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeBadCredentials   = "auth_bad_credentials"
	TextCodeAccountDisabled  = "auth_account_disabled"
	TextCodeTokenInvalid     = "auth_token_invalid"
	TextCodeTokenExpired     = "auth_token_expired"
	TextCodeIdentityNotFound = "auth_identity_not_found"
	TextCodeEmptyPassword    = "auth_empty_password"
)

// ErrBadCredentials covers both an unknown username and a wrong password.
// The two outcomes are deliberately indistinguishable to callers so the
// login endpoint cannot be used to enumerate usernames.
var ErrBadCredentials = errors.New("invalid username or password", errors.CategoryAuth).
	WithTextCode(TextCodeBadCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrAccountDisabled is returned when credentials are correct but the
// account is not active.
var ErrAccountDisabled = errors.New("account is disabled", errors.CategoryAuth).
	WithTextCode(TextCodeAccountDisabled).
	WithCode(errors.CodeForbidden)

// ErrTokenInvalid is returned for malformed tokens and signature mismatches.
var ErrTokenInvalid = errors.New("invalid session token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenInvalid).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned for well formed tokens past their expiry.
var ErrTokenExpired = errors.New("session token expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrIdentityNotFound is returned when no identity matches a lookup. The
// request middleware converts it to an anonymous request, it is never a
// user facing outcome on its own.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithTextCode(TextCodeIdentityNotFound).
	WithCode(errors.CodeNotFound)

// ErrNoEmptyString is returned when an empty password is handed to the hasher.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryBadInput).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.TextCode == TextCodeTokenExpired
	}
	return false
}

// IsBadCredentialsError will check for the merged credential failure
func IsBadCredentialsError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.TextCode == TextCodeBadCredentials
	}
	return false
}

// IsAccountDisabledError will check for logins blocked by account status
func IsAccountDisabledError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.TextCode == TextCodeAccountDisabled
	}
	return false
}
