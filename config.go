package auth

import (
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
)

// SimpleConfig is a concrete Config backed by explicit values. The signing
// key and TTL are required, there is no embedded production default.
type SimpleConfig struct {
	SigningKey string
	TokenTTL   time.Duration
	AuthScheme string
	ContextKey string
}

var _ Config = (*SimpleConfig)(nil)

func (c *SimpleConfig) GetSigningKey() string {
	return c.SigningKey
}

func (c *SimpleConfig) GetTokenTTL() time.Duration {
	return c.TokenTTL
}

func (c *SimpleConfig) GetAuthScheme() string {
	if c.AuthScheme == "" {
		return "Bearer"
	}
	return c.AuthScheme
}

func (c *SimpleConfig) GetContextKey() string {
	if c.ContextKey == "" {
		return "principal"
	}
	return c.ContextKey
}

func (c *SimpleConfig) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SigningKey, validation.Required),
		validation.Field(&c.TokenTTL, validation.Required, validation.Min(time.Millisecond)),
	)
	if err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "invalid auth configuration")
	}
	return nil
}

// LoadConfigFromEnv reads the process wide auth configuration once at
// startup: AUTH_SIGNING_KEY (required, confidential) and AUTH_TOKEN_TTL_MS
// (required, positive integer milliseconds).
func LoadConfigFromEnv() (*SimpleConfig, error) {
	cfg := &SimpleConfig{
		SigningKey: os.Getenv("AUTH_SIGNING_KEY"),
		AuthScheme: os.Getenv("AUTH_SCHEME"),
		ContextKey: os.Getenv("AUTH_CONTEXT_KEY"),
	}

	if raw := os.Getenv("AUTH_TOKEN_TTL_MS"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryValidation, "AUTH_TOKEN_TTL_MS must be an integer")
		}
		cfg.TokenTTL = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewTokenCodecFromConfig builds the codec with the configured key and TTL.
func NewTokenCodecFromConfig(cfg Config, logger Logger) (*TokenCodecImpl, error) {
	return NewTokenCodec([]byte(cfg.GetSigningKey()), cfg.GetTokenTTL(), logger)
}
