package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Directory DirectoryConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  []string
}

type DatabaseConfig struct {
	Path string
}

// DirectoryConfig controls the remote employee directory the dashboard
// hydrates itself from.
type DirectoryConfig struct {
	BaseURL      string
	PageSize     int
	FetchTimeout time.Duration
	CacheTTL     time.Duration
	Seed         int
}

type SessionConfig struct {
	Secret string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
			CORSOrigins:  []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./hrboard.db"),
		},
		Directory: DirectoryConfig{
			BaseURL:      getEnv("DIRECTORY_API_URL", "https://dummyjson.com"),
			PageSize:     getEnvAsInt("DIRECTORY_PAGE_SIZE", 20),
			FetchTimeout: getEnvAsDuration("DIRECTORY_FETCH_TIMEOUT", 5*time.Second),
			CacheTTL:     getEnvAsDuration("DIRECTORY_CACHE_TTL", time.Hour),
			Seed:         getEnvAsInt("DIRECTORY_SEED", 12345),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "default-secret-key"),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
