// Package config loads service configuration from an env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers for profile pictures.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config is the full service configuration.
type Config struct {
	AppHost      string
	AppPort      string
	LogLevel     string
	LogEncoding  string
	CORSOrigins  []string
	FrontendURL  string
	PublicAPIURL string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey string
	JWTExp       time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	StorageDriver    string
	StorageLocalDir  string
	StoragePublicURL string

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns host:port the API listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Load reads environment variables from path (if it exists) and returns
// the application, database, Redis, Kafka, SMTP, storage and JWT configuration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	c := &Config{}
	var err error

	// Application config
	c.AppHost = getEnv("APP_HOST", "localhost")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	c.LogEncoding = getEnv("APP_LOG_ENCODING", "json")
	c.CORSOrigins = splitList(getEnv("APP_CORS_ORIGINS", "http://localhost:3000"))
	c.FrontendURL = getEnv("APP_FRONTEND_URL", "http://localhost:3000")
	c.PublicAPIURL = getEnv("APP_PUBLIC_URL", "http://"+c.HTTPAddr())

	// PostgreSQL config
	c.PGHost = getEnv("POSTGRES_HOST", "localhost")
	c.PGUser = getEnv("POSTGRES_USER", "user")
	c.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	c.PGDB = getEnv("POSTGRES_DB", "database")
	if c.PGPort, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if c.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if c.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	c.RedisHost = getEnv("REDIS_HOST", "localhost")
	c.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if c.RedisPort, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if c.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if c.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if c.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	// JWT config
	c.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := getInt("JWT_EXP_SECOND", 7*24*3600)
	if err != nil {
		return nil, err
	}
	c.JWTExp = time.Duration(jwtExpSecond) * time.Second

	// Kafka config
	c.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	c.KafkaTopic = getEnv("KAFKA_TOPIC", "matchrimoney.events")

	// SMTP config
	c.SMTPHost = getEnv("SMTP_HOST", "")
	c.SMTPUser = getEnv("SMTP_USER", "")
	c.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	c.SMTPFrom = getEnv("SMTP_FROM", "Matchrimoney <no-reply@matchrimoney.com>")
	if c.SMTPPort, err = getInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}

	// Storage config
	c.StorageDriver = getEnv("STORAGE_DRIVER", StorageLocal)
	c.StorageLocalDir = getEnv("STORAGE_LOCAL_DIR", "uploads")
	// S3 objects default to <endpoint>/<bucket>
	defaultPublicURL := ""
	if c.StorageDriver == StorageLocal {
		defaultPublicURL = c.PublicAPIURL + "/uploads"
	}
	c.StoragePublicURL = getEnv("STORAGE_PUBLIC_URL", defaultPublicURL)
	c.S3Endpoint = getEnv("S3_ENDPOINT", "")
	c.S3Region = getEnv("S3_REGION", "us-east-1")
	c.S3Bucket = getEnv("S3_BUCKET", "")
	c.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	c.S3SecretKey = getEnv("S3_SECRET_KEY", "")

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageLocal:
	case StorageS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=%s", StorageS3)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.JWTExp <= 0 {
		return fmt.Errorf("JWT_EXP_SECOND must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
