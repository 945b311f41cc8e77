package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	AutoMigrate        bool
}

// RedisConfig holds settings for the pokemon read cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	CacheTTLSec int
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// CacheTTL returns the cache entry lifetime; zero means entries do not expire.
func (c RedisConfig) CacheTTL() time.Duration {
	if c.CacheTTLSec <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSec) * time.Second
}

// MinIOConfig holds object storage settings for pokemon sprites.
// An empty Endpoint disables sprite routes.
type MinIOConfig struct {
	Endpoint           string
	AccessKey          string
	SecretKey          string
	Bucket             string
	UseSSL             bool
	SpriteURLExpirySec int
}

// Enabled reports whether an object storage endpoint was configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// SpriteURLExpiry returns the lifetime of presigned sprite URLs.
func (c MinIOConfig) SpriteURLExpiry() time.Duration {
	if c.SpriteURLExpirySec <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.SpriteURLExpirySec) * time.Second
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	LogLevel string
	Database DatabaseConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
}

// Location resolves Timezone, falling back to UTC when it is empty or unknown.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file is auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over .env entries.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", ""),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvInt("REDIS_DB", 0),
			CacheTTLSec: getEnvInt("REDIS_CACHE_TTL_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:           getEnv("MINIO_ENDPOINT", ""),
			AccessKey:          getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:          getEnv("MINIO_SECRET_KEY", ""),
			Bucket:             getEnv("MINIO_BUCKET", "pokemon-sprites"),
			UseSSL:             getEnvBool("MINIO_USE_SSL", false),
			SpriteURLExpirySec: getEnvInt("SPRITE_URL_EXPIRY_SEC", 900),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
