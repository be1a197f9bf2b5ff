// Package config loads client settings from a config file, the environment
// and .env files.
//
// Precedence, highest first: environment variables (OSCLIENT_*), variables
// from .env files that are not already set in the environment, the config
// file, then defaults.
//
//	cfg, err := config.Load("osclient.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := osclient.NewFromConfig(cfg)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. OSCLIENT_ADDRESSES.
const EnvPrefix = "OSCLIENT"

// DefaultAddress is used when no addresses are configured.
const DefaultAddress = "http://localhost:9200"

// Config holds the settings needed to build a client.
type Config struct {
	Addresses          []string      `mapstructure:"addresses"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	APIKey             string        `mapstructure:"api_key"`
	MaxRetries         int           `mapstructure:"max_retries"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	CACertFile         string        `mapstructure:"ca_cert_file"`
	Debug              bool          `mapstructure:"debug"`
	StrictParams       bool          `mapstructure:"strict_params"`
	ThrottleRequests   int           `mapstructure:"throttle_requests"`
	ThrottleWindow     time.Duration `mapstructure:"throttle_window"`
}

// keys lists every setting; each is bound to OSCLIENT_<KEY>.
var keys = []string{
	"addresses",
	"username",
	"password",
	"api_key",
	"max_retries",
	"request_timeout",
	"insecure_skip_verify",
	"ca_cert_file",
	"debug",
	"strict_params",
	"throttle_requests",
	"throttle_window",
}

// Load reads the optional config file (YAML, JSON or TOML, chosen by
// extension), then .env files, then the environment. An empty file skips
// the file step. With no envFiles, ./.env is loaded if it exists.
func Load(file string, envFiles ...string) (*Config, error) {
	if err := LoadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("addresses", []string{DefaultAddress})
	v.SetDefault("max_retries", 3)
	v.SetDefault("throttle_window", 10*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("binding %s: %w", k, err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Addresses = splitAddresses(cfg.Addresses)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv sets variables from .env files without overriding ones already
// in the environment. Missing files are an error only when named explicitly.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}
	return nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	if len(c.Addresses) == 0 {
		return errors.New("at least one address is required")
	}
	if c.APIKey != "" && c.Username != "" {
		return errors.New("username and api_key are mutually exclusive")
	}
	if c.Username != "" && c.Password == "" {
		return errors.New("password is required when username is set")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0, got %d", c.MaxRetries)
	}
	if c.ThrottleRequests < 0 {
		return fmt.Errorf("throttle_requests must be >= 0, got %d", c.ThrottleRequests)
	}
	return nil
}

// CACert returns the contents of CACertFile, or nil when none is set.
func (c *Config) CACert() ([]byte, error) {
	if c.CACertFile == "" {
		return nil, nil
	}
	b, err := os.ReadFile(c.CACertFile)
	if err != nil {
		return nil, fmt.Errorf("reading CA certificate: %w", err)
	}
	return b, nil
}

// splitAddresses accepts both list values and a single comma-separated string.
func splitAddresses(in []string) []string {
	var out []string
	for _, a := range in {
		for _, part := range strings.Split(a, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
