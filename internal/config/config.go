package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Directory DirectoryConfig
	Database  DatabaseConfig
	Security  SecurityConfig
	Audit     AuditConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// DirectoryConfig points the console at the storefront backend.
// A zero Timeout means requests are never cut short.
type DirectoryConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type AuditConfig struct {
	Enabled        bool
	AutoMigrate    bool
	MigrationsPath string
	// Retention of zero keeps entries forever
	Retention time.Duration
}

type LogConfig struct {
	Level string
}

var ErrInvalidDirectoryURL = errors.New("DIRECTORY_BASE_URL must be an absolute http(s) URL")

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "5000"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 0),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Directory: DirectoryConfig{
			BaseURL:   strings.TrimRight(getEnv("DIRECTORY_BASE_URL", "http://db_app:5001"), "/"),
			Timeout:   getDurationEnv("DIRECTORY_TIMEOUT", 0),
			UserAgent: getEnv("DIRECTORY_USER_AGENT", "storefront-console/1.0"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "console_user"),
			Password:        getEnv("DB_PASSWORD", "console_password"),
			Name:            getEnv("DB_NAME", "console_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Audit: AuditConfig{
			Enabled:        getBoolEnv("AUDIT_ENABLED", false),
			AutoMigrate:    getBoolEnv("AUTO_MIGRATE", true),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),
			Retention:      getDurationEnv("AUDIT_RETENTION", 0),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports configuration the console cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Directory.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidDirectoryURL, c.Directory.BaseURL)
	}
	if c.Directory.Timeout < 0 {
		return fmt.Errorf("DIRECTORY_TIMEOUT must not be negative, got %s", c.Directory.Timeout)
	}
	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL renders the connection as a postgres:// URL, the form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to same-origin only")
			return []string{}
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
