package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the process reads from the environment, loaded
// once at startup and injected where needed. Nothing else in the codebase
// should touch os.Getenv.
type Config struct {
	Port string
	Env  string

	// SeedDB makes the process load demo data and exit instead of serving.
	SeedDB bool

	// Database. DBType selects the driver: "sqlite" (default, dev) or
	// "postgres". For postgres either DatabaseURL or the discrete fields
	// are used.
	DBType      string
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string

	// Single shared admin identity. If AdminPasswordHash is set it is a
	// bcrypt hash and AdminPassword is ignored.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        time.Duration

	AcceptedOrigins []string

	// Contact notification email (Resend).
	ResendAPIKey    string
	ResendFromEmail string
	ContactEmail    string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load snapshots the environment into a Config. Defaults keep a dev setup
// zero-config: sqlite file database, admin/admin credentials.
func Load() *Config {
	env := snapshot()

	return &Config{
		Port: GetString(env, "PORT", "8080"),
		Env:  GetString(env, "APP_ENV", "development"),

		SeedDB: GetBool(env, "SEED_DB", false),

		DBType:      GetString(env, "DB_TYPE", "sqlite"),
		DatabaseURL: GetString(env, "DATABASE_URL", "portfolio.db"),
		DBHost:      GetString(env, "DB_HOST", "localhost"),
		DBUser:      GetString(env, "DB_USER", "postgres"),
		DBPassword:  GetString(env, "DB_PASSWORD", ""),
		DBName:      GetString(env, "DB_NAME", "portfolio"),
		DBPort:      GetString(env, "DB_PORT", "5432"),

		AdminUsername:     GetString(env, "ADMIN_USERNAME", "admin"),
		AdminPassword:     GetString(env, "ADMIN_PASSWORD", "admin"),
		AdminPasswordHash: GetString(env, "ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     GetString(env, "SESSION_SECRET", "dev-session-secret"),
		SessionTTL:        time.Duration(GetInt(env, "SESSION_TTL_HOURS", 24)) * time.Hour,

		AcceptedOrigins: splitList(GetString(env, "ACCEPTED_ORIGINS", "*")),

		ResendAPIKey:    GetString(env, "RESEND_API_KEY", ""),
		ResendFromEmail: GetString(env, "RESEND_FROM_EMAIL", "Portfolio Contact <onboarding@resend.dev>"),
		ContactEmail:    GetString(env, "CONTACT_EMAIL", ""),

		ReadTimeout:  time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 30)) * time.Second,
		WriteTimeout: time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second,
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PostgresDSN builds a connection string from the discrete fields when
// DATABASE_URL is not a full postgres URL.
func (c *Config) PostgresDSN() string {
	if strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func snapshot() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}

	return asBool
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
