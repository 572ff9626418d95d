package auth_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"

	"github.com/rivergate/auth"
)

type stubUserStore struct {
	byUsername map[string]*auth.User
	byID       map[int64]*auth.User
	err        error
}

func newStubUserStore(users ...*auth.User) *stubUserStore {
	s := &stubUserStore{
		byUsername: map[string]*auth.User{},
		byID:       map[int64]*auth.User{},
	}
	for _, u := range users {
		s.byUsername[u.Username] = u
		s.byID[u.ID] = u
	}
	return s
}

func (s *stubUserStore) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.byUsername[username]; ok {
		return u, nil
	}
	return nil, errors.New("user not found", errors.CategoryNotFound)
}

func (s *stubUserStore) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found", errors.CategoryNotFound)
}

func seedUser(t *testing.T, id int64, username, password string, active bool) *auth.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return &auth.User{
		ID:           id,
		Username:     username,
		DisplayName:  username + " display",
		PasswordHash: hash,
		Active:       active,
	}
}

func TestVerifyCredentials(t *testing.T) {
	store := newStubUserStore(
		seedUser(t, 1, "alice", "secret123", true),
		seedUser(t, 3, "carol", "correctPassword", false),
	)
	provider := auth.NewPrincipalProvider(store)

	t.Run("valid credentials", func(t *testing.T) {
		p, err := provider.VerifyCredentials(context.Background(), "alice", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), p.ID())
		assert.Equal(t, "alice", p.Username())
		assert.True(t, p.IsActive())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.VerifyCredentials(context.Background(), "alice", "wrong")
		assert.Equal(t, auth.ErrBadCredentials, err)
	})

	t.Run("unknown username yields the same failure", func(t *testing.T) {
		_, unknownErr := provider.VerifyCredentials(context.Background(), "bob", "anything")
		_, wrongErr := provider.VerifyCredentials(context.Background(), "alice", "wrong")
		assert.Equal(t, auth.ErrBadCredentials, unknownErr)
		assert.Equal(t, wrongErr.Error(), unknownErr.Error())
	})

	t.Run("disabled account with correct password", func(t *testing.T) {
		_, err := provider.VerifyCredentials(context.Background(), "carol", "correctPassword")
		assert.Equal(t, auth.ErrAccountDisabled, err)
	})

	t.Run("disabled account with wrong password stays generic", func(t *testing.T) {
		_, err := provider.VerifyCredentials(context.Background(), "carol", "nope")
		assert.Equal(t, auth.ErrBadCredentials, err)
	})

	t.Run("store failure is not a credential failure", func(t *testing.T) {
		broken := newStubUserStore()
		broken.err = errors.New("connection refused", errors.CategoryInternal)
		p := auth.NewPrincipalProvider(broken)

		_, err := p.VerifyCredentials(context.Background(), "alice", "secret123")
		assert.Error(t, err)
		assert.False(t, auth.IsBadCredentialsError(err))
	})
}

func TestResolveByUsername(t *testing.T) {
	store := newStubUserStore(seedUser(t, 1, "alice", "secret123", true))
	provider := auth.NewPrincipalProvider(store)

	p, err := provider.ResolveByUsername(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID())

	// exact match only, no case folding in the provider
	_, err = provider.ResolveByUsername(context.Background(), "Alice")
	assert.Equal(t, auth.ErrIdentityNotFound, err)
}

func TestResolveByID(t *testing.T) {
	store := newStubUserStore(seedUser(t, 1, "alice", "secret123", true))
	provider := auth.NewPrincipalProvider(store)

	p, err := provider.ResolveByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "alice", p.Username())

	_, err = provider.ResolveByID(context.Background(), 99)
	assert.Equal(t, auth.ErrIdentityNotFound, err)
}
