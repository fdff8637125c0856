package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName       = "HopeChain"
	defaultAppEnv        = "development"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultShutdownDelay = 10 * time.Second
	defaultIdemTTL       = 24 * time.Hour

	loginDelayEnvVar    = "LOGIN_DELAY"
	registerDelayEnvVar = "REGISTER_DELAY"
	shutdownEnvVar      = "SHUTDOWN_TIMEOUT"
	idemTTLEnvVar       = "IDEMPOTENCY_TTL"
)

// Config captures application runtime configuration loaded from environment
// variables. DatabaseURL and RedisURL are optional: without them the demo
// runs entirely on in-memory backends.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration

	// Simulated latency for the session store's asynchronous operations.
	LoginDelay    time.Duration
	RegisterDelay time.Duration
}

// Load reads configuration from a .env file (when present) and the
// environment, and populates a Config instance.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		ShutdownPeriod: defaultShutdownDelay,
		IdempotencyTTL: defaultIdemTTL,
		LoginDelay:     time.Second,
		RegisterDelay:  1500 * time.Millisecond,
	}

	for _, d := range []struct {
		envVar string
		target *time.Duration
	}{
		{shutdownEnvVar, &cfg.ShutdownPeriod},
		{idemTTLEnvVar, &cfg.IdempotencyTTL},
		{loginDelayEnvVar, &cfg.LoginDelay},
		{registerDelayEnvVar, &cfg.RegisterDelay},
	} {
		v := os.Getenv(d.envVar)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", d.envVar, err)
		}
		*d.target = parsed
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
