package auth

import (
	"fmt"
	"time"
)

const (
	// DefaultSecret is only meant for local development. Any other deployment must override it.
	DefaultSecret = "studio-sync-dev-secret"

	// DefaultMaxClockSkew is how far a request timestamp may drift from the server clock
	DefaultMaxClockSkew = 5 * time.Minute
)

type Config struct {
	Secret       string        `mapstructure:"secret"`
	MaxClockSkew time.Duration `mapstructure:"max_clock_skew"`
}

func (c *Config) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("auth `secret` is required")
	}
	if c.MaxClockSkew <= 0 {
		return fmt.Errorf("auth `max_clock_skew` must be greater than 0")
	}
	return nil
}

// IsInsecureSecret reports whether the built-in development secret is in use
func (c *Config) IsInsecureSecret() bool {
	return c.Secret == DefaultSecret
}
