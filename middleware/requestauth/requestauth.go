// Package requestauth intercepts inbound requests once, before any handler,
// and attaches the authenticated principal to the request context. It never
// rejects a request itself: absent, expired or otherwise invalid tokens
// leave the request anonymous and the route's authorization gate decides.
package requestauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rivergate/auth"
)

// DefaultContextKey is the fiber locals key the principal is stored under.
const DefaultContextKey = "principal"

// DefaultAuthScheme is the Authorization header scheme we accept.
const DefaultAuthScheme = "Bearer"

type Config struct {
	// Codec validates bearer tokens. Required.
	Codec auth.TokenCodec
	// Resolver re-hydrates the principal from the token subject. Required.
	Resolver auth.IdentityResolver
	// Filter skips token extraction entirely when it returns true.
	Filter func(*fiber.Ctx) bool
	// ContextKey overrides the fiber locals key, DefaultContextKey when empty.
	ContextKey string
	// AuthScheme overrides the Authorization scheme, DefaultAuthScheme when empty.
	AuthScheme string
	Logger     auth.Logger
}

func (cfg *Config) setDefaults() {
	if cfg.ContextKey == "" {
		cfg.ContextKey = DefaultContextKey
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = DefaultAuthScheme
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
}

// New builds the per-request authentication middleware. Register it before
// every route, public and protected alike: it installs the identity scope
// that login, logout and the authorization gate all operate on.
func New(config Config) fiber.Handler {
	cfg := config
	cfg.setDefaults()

	if cfg.Codec == nil {
		panic("requestauth: Config.Codec is required")
	}
	if cfg.Resolver == nil {
		panic("requestauth: Config.Resolver is required")
	}

	return func(c *fiber.Ctx) error {
		ctx := auth.WithIdentityScope(c.UserContext())
		c.SetUserContext(ctx)

		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw := extractBearerToken(c, cfg.AuthScheme)
		if raw == "" {
			return c.Next()
		}

		claims, err := cfg.Codec.Parse(raw)
		if err != nil {
			// expired and invalid tokens degrade to anonymous, the
			// authorization gate owns the reject decision
			cfg.Logger.Debug("request token rejected", "error", err)
			return c.Next()
		}

		principal, err := cfg.Resolver.ResolveByID(ctx, claims.SubjectID())
		if err != nil {
			// identity deleted after issuance, treat as anonymous
			cfg.Logger.Debug("request token subject not resolvable", "subject", claims.SubjectID(), "error", err)
			return c.Next()
		}

		auth.BindPrincipal(ctx, principal)
		c.Locals(cfg.ContextKey, principal)

		return c.Next()
	}
}

// RequireAuthenticated is the authorization gate for protected routes. It
// answers with the standard 401 envelope when the identity scope is empty.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := auth.PrincipalFromContext(c.UserContext()); !ok {
			return Unauthorized(c)
		}
		return c.Next()
	}
}

// Unauthorized writes the fixed-shape failure envelope with the protocol's
// unauthenticated status.
func Unauthorized(c *fiber.Ctx, message ...string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(auth.Unauthorized(message...))
}

// PrincipalFromCtx reads the principal attached by New, if any.
func PrincipalFromCtx(c *fiber.Ctx, key ...string) (*auth.Principal, bool) {
	k := DefaultContextKey
	if len(key) > 0 && key[0] != "" {
		k = key[0]
	}
	if p, ok := c.Locals(k).(*auth.Principal); ok && p != nil {
		return p, true
	}
	return auth.PrincipalFromContext(c.UserContext())
}

func extractBearerToken(c *fiber.Ctx, scheme string) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
