// Package config loads the dbx command configuration from a YAML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"
	"golang.org/x/time/rate"

	"github.com/tomblancdev/dropbox-go"
)

// Environment variables read by Load. They override the file.
const (
	EnvToken         = "DROPBOX_TOKEN"
	EnvTestSyncHost  = "DROPBOX_TEST_SYNC_HOST"
	EnvTestAsyncHost = "DROPBOX_TEST_ASYNC_HOST"
	EnvLogLevel      = "DROPBOX_LOG_LEVEL"
	EnvConfigFile    = "DBX_CONFIG"
)

// Config is the dbx configuration.
type Config struct {
	Token     string        `yaml:"token" validate:"omitempty,printascii"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`

	// SelectUser and PathRoot are sent on every call when set.
	SelectUser string `yaml:"select_user"`
	PathRoot   string `yaml:"path_root" validate:"omitempty,json"`

	// Compression defaults to on.
	Compression     *bool `yaml:"compression"`
	MaxResponseSize int64 `yaml:"max_response_size" validate:"gte=0"`

	RateLimit RateLimit `yaml:"rate_limit"`
	TestHosts TestHosts `yaml:"test_hosts"`
	Log       Log       `yaml:"log"`
}

// RateLimit bounds the call rate. Zero PerSecond disables it.
type RateLimit struct {
	PerSecond float64 `yaml:"per_second" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"required_with=PerSecond,gte=0"`
}

// TestHosts redirects every call to a pair of test servers.
type TestHosts struct {
	Sync  string `yaml:"sync" validate:"required_with=Async,omitempty,hostname_port"`
	Async string `yaml:"async" validate:"required_with=Sync,omitempty,hostname_port"`
}

// Log configures the command's logger.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{Log: Log{Level: "info"}}
}

// DefaultPath returns the file Load reads when no path is given:
// $DBX_CONFIG, or dbx/config.yaml under the user configuration directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dbx", "config.yaml")
}

// Load reads path, applies environment overrides and validates the result.
// An empty path reads DefaultPath, which may be missing.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(data); err != nil {
				return nil, fmt.Errorf("config: %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvToken); ok {
		c.Token = v
	}
	if v, ok := lookup(EnvTestSyncHost); ok {
		c.TestHosts.Sync = v
	}
	if v, ok := lookup(EnvTestAsyncHost); ok {
		c.TestHosts.Async = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			msgs := make([]error, 0, len(valErrs))
			for _, fe := range valErrs {
				msgs = append(msgs, fmt.Errorf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %w", errors.Join(msgs...))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Limiter returns the configured rate limiter, or nil when disabled.
func (c *Config) Limiter() *rate.Limiter {
	if c.RateLimit.PerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.RateLimit.PerSecond), c.RateLimit.Burst)
}

// Options converts the configuration into client options.
func (c *Config) Options() []dropbox.Option {
	var opts []dropbox.Option

	if c.Token != "" {
		opts = append(opts, dropbox.WithToken(c.Token))
	}
	if c.UserAgent != "" {
		opts = append(opts, dropbox.WithUserAgent(c.UserAgent))
	}
	if c.Timeout > 0 {
		opts = append(opts, dropbox.WithTimeout(c.Timeout))
	}
	if c.SelectUser != "" {
		opts = append(opts, dropbox.WithSelectUser(c.SelectUser))
	}
	if c.PathRoot != "" {
		opts = append(opts, dropbox.WithPathRoot(c.PathRoot))
	}
	if c.Compression != nil {
		opts = append(opts, dropbox.WithCompression(*c.Compression))
	}
	if c.MaxResponseSize > 0 {
		opts = append(opts, dropbox.WithMaxResponseSize(c.MaxResponseSize))
	}
	if c.TestHosts.Sync != "" || c.TestHosts.Async != "" {
		opts = append(opts, dropbox.WithTestHosts(c.TestHosts.Sync, c.TestHosts.Async))
	}
	return opts
}
