package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// User credential bindings. A deployment uses exactly one for the user resource family.
const (
	BindingBearer  = "bearer"
	BindingSession = "session"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	CORSOrigins           string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters. The two token secrets are distinct so a
// user token can never pass as an admin token.
type AuthConfig struct {
	UserTokenSecret   string
	AdminTokenSecret  string
	TokenTTLMinutes   int
	BcryptCost        int
	UserBinding       string
	SessionTTLMinutes int
	SessionCookie     string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailTo    string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
// It refuses to return a config without both token secrets.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "storefront-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("PORT", "5500"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			CORSOrigins:           getEnv("CORS_ORIGINS", "*"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			UserTokenSecret:   os.Getenv("USER_TOKEN_SECRET"),
			AdminTokenSecret:  os.Getenv("ADMIN_TOKEN_SECRET"),
			TokenTTLMinutes:   getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 0),
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 10),
			UserBinding:       strings.ToLower(getEnv("AUTH_USER_BINDING", BindingBearer)),
			SessionTTLMinutes: getEnvAsInt("AUTH_SESSION_TTL_MINUTES", 60*24*7),
			SessionCookie:     getEnv("AUTH_SESSION_COOKIE", "sid"),
		},
		Notification: NotificationConfig{
			EmailTo:    getEnv("NOTIFY_EMAIL_TO", ""),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	if err := cfg.Auth.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the auth settings the service cannot run without.
func (a AuthConfig) Validate() error {
	var errs []error
	if a.UserTokenSecret == "" {
		errs = append(errs, errors.New("USER_TOKEN_SECRET is required"))
	}
	if a.AdminTokenSecret == "" {
		errs = append(errs, errors.New("ADMIN_TOKEN_SECRET is required"))
	}
	if a.UserTokenSecret != "" && a.UserTokenSecret == a.AdminTokenSecret {
		errs = append(errs, errors.New("USER_TOKEN_SECRET and ADMIN_TOKEN_SECRET must differ"))
	}
	if a.UserBinding != BindingBearer && a.UserBinding != BindingSession {
		errs = append(errs, fmt.Errorf("AUTH_USER_BINDING must be %q or %q, got %q", BindingBearer, BindingSession, a.UserBinding))
	}
	return errors.Join(errs...)
}

// TokenTTL returns the lifetime embedded in issued tokens; zero means no expiry claim.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// SessionTTL returns how long a server-side session lives.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.SessionTTLMinutes <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsDevelopment reports whether the service runs with development defaults.
func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development"
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
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
