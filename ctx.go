package auth

import (
	"context"
	"sync"
)

var identityCtxKey = &contextKey{"identity"}

type contextKey struct {
	name string
}

// identityScope is the per-request slot holding at most one Principal. The
// request middleware installs one scope per inbound request, login binds
// into it and logout clears it. Scopes are never shared across requests, the
// mutex only guards handler goroutines spawned within a single request.
type identityScope struct {
	mu        sync.RWMutex
	principal *Principal
}

// WithIdentityScope installs an empty identity slot in the given context.
// Call once per request, before any handler runs.
func WithIdentityScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, identityCtxKey, &identityScope{})
}

// BindPrincipal stores the Principal in the context's identity slot. It
// reports false when no slot was installed.
func BindPrincipal(ctx context.Context, p *Principal) bool {
	scope, ok := ctx.Value(identityCtxKey).(*identityScope)
	if !ok {
		return false
	}
	scope.mu.Lock()
	scope.principal = p
	scope.mu.Unlock()
	return true
}

// PrincipalFromContext finds the bound Principal, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	scope, ok := ctx.Value(identityCtxKey).(*identityScope)
	if !ok {
		return nil, false
	}
	scope.mu.RLock()
	p := scope.principal
	scope.mu.RUnlock()
	if p == nil {
		return nil, false
	}
	return p, true
}

// ClearPrincipal empties the identity slot. Clearing an empty or missing
// slot is a no-op.
func ClearPrincipal(ctx context.Context) {
	scope, ok := ctx.Value(identityCtxKey).(*identityScope)
	if !ok {
		return
	}
	scope.mu.Lock()
	scope.principal = nil
	scope.mu.Unlock()
}

// IsAuthenticated reports whether the context carries a bound Principal.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := PrincipalFromContext(ctx)
	return ok
}
