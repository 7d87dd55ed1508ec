// Package config loads service configuration from the environment.
// A .env file in the working directory is honoured for local development;
// real deployments set the variables directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Service   ServiceConfig
	Database  DatabaseConfig
	Token     TokenConfig
	TMDB      TMDBConfig
	Logging   LoggingConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig
	Shutdown  ShutdownConfig
}

type ServiceConfig struct {
	Name    string
	Version string
	Env     string
	Port    string
}

type DatabaseConfig struct {
	URL string
}

type TokenConfig struct {
	// Secret signs session tokens. Required.
	Secret string
	// TTL is the default session lifetime.
	TTL time.Duration
	// RememberMeTTL is the extended lifetime for remember-me logins.
	RememberMeTTL time.Duration
	// CookieSecure marks the session cookie Secure (set in production).
	CookieSecure bool
}

type TMDBConfig struct {
	BaseURL     string
	AccessToken string
}

type LoggingConfig struct {
	Level string
}

type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

type ProfilingConfig struct {
	Enabled  bool
	Endpoint string
}

type ShutdownConfig struct {
	TimeoutSeconds    int
	DrainDelaySeconds int
}

// Load reads configuration from the environment, applying defaults for
// everything except secrets. Call Validate before using the result.
func Load() *Config {
	// Best-effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "movie-service"),
			Version: getEnv("SERVICE_VERSION", "dev"),
			Env:     env,
			Port:    getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Token: TokenConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			TTL:           getDuration("TOKEN_TTL", time.Hour),
			RememberMeTTL: getDuration("TOKEN_REMEMBER_ME_TTL", 30*24*time.Hour),
			CookieSecure:  env == "production",
		},
		TMDB: TMDBConfig{
			BaseURL:     getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			AccessToken: os.Getenv("TMDB_ACCESS_TOKEN"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Tracing: TracingConfig{
			Enabled:    getBool("TRACING_ENABLED", false),
			Endpoint:   getEnv("TRACING_ENDPOINT", "localhost:4318"),
			SampleRate: getFloat("TRACING_SAMPLE_RATE", 1.0),
		},
		Profiling: ProfilingConfig{
			Enabled:  getBool("PROFILING_ENABLED", false),
			Endpoint: getEnv("PROFILING_ENDPOINT", "http://localhost:4040"),
		},
		Shutdown: ShutdownConfig{
			TimeoutSeconds:    getInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
			DrainDelaySeconds: getInt("READINESS_DRAIN_DELAY_SECONDS", 0),
		},
	}
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Token.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Token.TTL <= 0 || c.Token.RememberMeTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	if c.TMDB.AccessToken == "" {
		return errors.New("TMDB_ACCESS_TOKEN is required")
	}
	return nil
}

func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.Shutdown.TimeoutSeconds) * time.Second
}

func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return time.Duration(c.Shutdown.DrainDelaySeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Sprintf("invalid duration for %s: %q", key, v))
	}
	return d
}
