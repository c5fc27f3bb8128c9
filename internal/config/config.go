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

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Auth       AuthConfig
	Services   ServicesConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Redemption RedemptionConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host          string
	Username      string
	Password      string
	Name          string
	SSLMode       string
	RunMigrations bool
}

// AuthConfig holds bearer token settings
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds settings for the services we talk to
type ServicesConfig struct {
	WebAppURI string
}

// RedisConfig holds the optional Redis connection used for settlement locks
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds event streaming configuration. Publishing is disabled
// when Brokers is empty.
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// RedemptionConfig holds settlement tuning
type RedemptionConfig struct {
	LockTTL      time.Duration
	Location     *time.Location // day boundary for daily metrics
	RateLimitRPM int            // per-user quote/redeem limit; 0 disables
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")
	if cfg.Database.RunMigrations, err = strconv.ParseBool(getEnvWithDefault("RUN_MIGRATIONS", "false")); err != nil {
		return nil, fmt.Errorf("failed to parse RUN_MIGRATIONS: %w", err)
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:5173")

	// Redis configuration
	if cfg.Redis.Enabled, err = strconv.ParseBool(getEnvWithDefault("REDIS_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_ENABLED: %w", err)
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Kafka configuration
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "redemption-events")

	// Redemption configuration
	if cfg.Redemption.LockTTL, err = time.ParseDuration(getEnvWithDefault("REDEMPTION_LOCK_TTL", "10s")); err != nil {
		return nil, fmt.Errorf("failed to parse REDEMPTION_LOCK_TTL: %w", err)
	}
	if cfg.Redemption.Location, err = time.LoadLocation(getEnvWithDefault("METRICS_TIMEZONE", "Local")); err != nil {
		return nil, fmt.Errorf("failed to parse METRICS_TIMEZONE: %w", err)
	}

	if cfg.Redemption.RateLimitRPM, err = strconv.Atoi(getEnvWithDefault("REDEEM_RATE_LIMIT_RPM", "30")); err != nil {
		return nil, fmt.Errorf("failed to parse REDEEM_RATE_LIMIT_RPM: %w", err)
	}

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", "8000")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// BrokerList splits the comma separated broker setting
func (c *KafkaConfig) BrokerList() []string {
	if strings.TrimSpace(c.Brokers) == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
