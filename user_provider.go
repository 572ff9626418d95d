package auth

import (
	"context"

	"github.com/goliatone/go-errors"
)

// UserStore is the external collaborator holding stored identities. Username
// matching follows the store's collation, the bun repository in this module
// uses exact string equality.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// PrincipalProvider resolves principals from a UserStore and owns the
// credential check. Password hashes never leave this boundary.
type PrincipalProvider struct {
	store  UserStore
	logger Logger
}

// NewPrincipalProvider will create a new PrincipalProvider
func NewPrincipalProvider(store UserStore) *PrincipalProvider {
	return &PrincipalProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (p *PrincipalProvider) WithLogger(l Logger) *PrincipalProvider {
	if l != nil {
		p.logger = l
	}
	return p
}

var (
	_ IdentityResolver   = (*PrincipalProvider)(nil)
	_ CredentialVerifier = (*PrincipalProvider)(nil)
)

// VerifyCredentials finds the user, compares the password, and returns the
// principal. An unknown username and a wrong password both come back as
// ErrBadCredentials, the active check runs only after the password matched
// so a disabled account cannot be probed with guessed passwords.
func (p *PrincipalProvider) VerifyCredentials(ctx context.Context, username, password string) (*Principal, error) {
	user, err := p.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrBadCredentials
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	if !user.Active {
		return nil, ErrAccountDisabled
	}

	return NewPrincipal(user), nil
}

// ResolveByUsername maps the stored identity with that exact username to a
// principal, ErrIdentityNotFound when absent.
func (p *PrincipalProvider) ResolveByUsername(ctx context.Context, username string) (*Principal, error) {
	user, err := p.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user by username")
	}

	return NewPrincipal(user), nil
}

// ResolveByID re-hydrates a principal from a token's subject claim.
func (p *PrincipalProvider) ResolveByID(ctx context.Context, id int64) (*Principal, error) {
	user, err := p.store.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user by id")
	}

	return NewPrincipal(user), nil
}
