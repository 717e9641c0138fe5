package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	errInvalidPort         = errors.New("config: invalid PORT number")
	errInvalidTimeout      = errors.New("config: FETCH_TIMEOUT must be positive")
	errRedirectsOutOfRange = errors.New("config: MAX_REDIRECTS must be 1-50")
	errInvalidBodyLimit    = errors.New("config: MAX_BODY_BYTES must be positive")
	errInvalidRateLimit    = errors.New("config: RATE_LIMIT_RPS must not be negative")
	errInvalidBurst        = errors.New("config: RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
)

// Config holds all application configuration. Values come from an optional
// YAML file named by SEO_CONFIG_FILE, overridden by environment variables.
type Config struct {
	Port                 string        `yaml:"port"`
	LogLevel             string        `yaml:"log_level"`
	LogFormat            string        `yaml:"log_format"`
	FetchTimeout         time.Duration `yaml:"fetch_timeout"`
	MaxRedirects         int           `yaml:"max_redirects"`
	MaxBodyBytes         int64         `yaml:"max_body_bytes"`
	AllowedOrigins       []string      `yaml:"cors_allowed_origins"`
	RateLimitRPS         float64       `yaml:"rate_limit_rps"`
	RateLimitBurst       int           `yaml:"rate_limit_burst"`
	BlockPrivateNetworks bool          `yaml:"block_private_networks"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:                 "4000",
		LogLevel:             "INFO",
		LogFormat:            "json",
		FetchTimeout:         20 * time.Second,
		MaxRedirects:         10,
		MaxBodyBytes:         10 << 20,
		AllowedOrigins:       []string{"*"},
		RateLimitRPS:         5,
		RateLimitBurst:       10,
		BlockPrivateNetworks: true,
	}
}

// Load reads configuration from .env, the optional YAML file and environment
// variables, in increasing order of precedence.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("SEO_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.FetchTimeout = getEnvAsDuration("FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.MaxRedirects = getEnvAsInt("MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.MaxBodyBytes = int64(getEnvAsInt("MAX_BODY_BYTES", int(cfg.MaxBodyBytes)))
	cfg.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.RateLimitRPS = getEnvAsFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = getEnvAsInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.BlockPrivateNetworks = getEnvAsBool("BLOCK_PRIVATE_NETWORKS", cfg.BlockPrivateNetworks)

	return cfg, cfg.validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: got %s", errInvalidTimeout, c.FetchTimeout)
	}

	if c.MaxRedirects < 1 || c.MaxRedirects > 50 {
		return fmt.Errorf("%w: got %d", errRedirectsOutOfRange, c.MaxRedirects)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: got %d", errInvalidBodyLimit, c.MaxBodyBytes)
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("%w: got %g", errInvalidRateLimit, c.RateLimitRPS)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("%w: got %d", errInvalidBurst, c.RateLimitBurst)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsFloat(key string, fallback float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsList(key string, fallback []string) []string {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
