package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ID strategies accepted by ID_STRATEGY.
const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

// Config aggregates runtime configuration for the mock API, the UI fixture server and the
// contract suite client.
type Config struct {
	App    AppConfig
	UI     UIConfig
	Logger LoggerConfig
	Auth   AuthConfig
	Client ClientConfig
}

// AppConfig controls the mock API server.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	IDStrategy            string
}

// UIConfig controls the static fixture server.
type UIConfig struct {
	Host      string
	Port      string
	PublicDir string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig holds parameters for minting client bearer tokens.
type AuthConfig struct {
	TokenSecret     string
	TokenTTLMinutes int
}

// ClientConfig describes how the contract suite reaches the servers.
type ClientConfig struct {
	BaseURL        string
	UIURL          string
	Token          string
	APIKey         string
	EnvName        string
	LogAPI         bool
	APILogPath     string
	TimeoutSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "mock-bank-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3001"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			IDStrategy:            strings.ToLower(getEnv("ID_STRATEGY", IDStrategyUUID)),
		},
		UI: UIConfig{
			Host:      getEnv("UI_HOST", "0.0.0.0"),
			Port:      getEnv("UI_PORT", "3002"),
			PublicDir: getEnv("UI_PUBLIC_DIR", "public"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			TokenSecret:     getEnv("AUTH_TOKEN_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 60),
		},
		Client: ClientConfig{
			BaseURL:        strings.TrimRight(getEnv("BASE_URL", "http://localhost:3001"), "/"),
			UIURL:          strings.TrimRight(getEnv("UI_URL", "http://localhost:3002"), "/"),
			Token:          os.Getenv("TOKEN"),
			APIKey:         os.Getenv("API_KEY"),
			EnvName:        getEnv("ENV_NAME", "local"),
			LogAPI:         getEnvAsBool("LOG_API", false),
			APILogPath:     getEnv("API_LOG_PATH", "reports/api.log"),
			TimeoutSeconds: getEnvAsInt("CLIENT_TIMEOUT_SECONDS", 10),
		},
	}

	switch cfg.App.IDStrategy {
	case IDStrategyUUID, IDStrategySequence:
	default:
		return nil, fmt.Errorf("invalid ID_STRATEGY %q", cfg.App.IDStrategy)
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Addr returns the UI server bind address.
func (u UIConfig) Addr() string {
	return fmt.Sprintf("%s:%s", u.Host, u.Port)
}

// Timeout returns the per-request client timeout.
func (c ClientConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
