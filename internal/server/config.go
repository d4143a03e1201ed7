package server

import (
	"fmt"

	"github.com/studiosync/syncserver/internal/server/auth"
	"github.com/studiosync/syncserver/internal/server/export"
)

const (
	DefaultAddr        = "127.0.0.1:3001"
	DefaultMaxBodySize = 64 << 20 // 64 MiB
)

// Config is read once at startup and never mutated afterwards
type Config struct {
	HTTP        HTTPConfig    `mapstructure:"http"`
	Auth        auth.Config   `mapstructure:"auth"`
	Export      export.Config `mapstructure:"export"`
	ProjectRoot string        `mapstructure:"project_root"`
}

type HTTPConfig struct {
	Addr        string `mapstructure:"addr"`
	CertFile    string `mapstructure:"cert_file"`
	KeyFile     string `mapstructure:"key_file"`
	MaxBodySize int64  `mapstructure:"max_body_size"`
	RateLimit   string `mapstructure:"rate_limit"`
}

func (c *HTTPConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("http `addr` is required")
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return fmt.Errorf("http `cert_file` and `key_file` must be set together")
	}
	if c.MaxBodySize < 0 {
		return fmt.Errorf("http `max_body_size` must not be negative")
	}
	return nil
}

func (c *HTTPConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

func (c *Config) Validate() error {
	if c.ProjectRoot == "" {
		return fmt.Errorf("`project_root` is required")
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Export.Validate(); err != nil {
		return err
	}
	return nil
}
