package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey         string   // API key for authentication
	TrustedProxies []string // proxies whose X-Forwarded-For is believed

	GameAPIBaseURL      string // authoritative game-data service
	CommunityRecipesURL string // community dataset
	ImportOnStart       bool   // refresh recipes from upstream at boot

	CacheSize int
	CacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		Environment:         getEnv("ENVIRONMENT", "dev"),
		ServiceName:         getEnv("SERVICE_NAME", "craftgraph"),
		Version:             getEnv("VERSION", "dev"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "craftgraph"),
		APIKey:              getEnv("API_KEY", ""),
		GameAPIBaseURL:      getEnv("GAME_API_BASE_URL", ""),
		CommunityRecipesURL: getEnv("COMMUNITY_RECIPES_URL", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.ImportOnStart, err = strconv.ParseBool(getEnv("IMPORT_ON_START", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_ON_START value: %w", err)
	}

	cacheSizeStr := getEnv("ANALYSIS_CACHE_SIZE", "1024")
	cfg.CacheSize, err = strconv.Atoi(cacheSizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYSIS_CACHE_SIZE value: %w", err)
	}

	cacheTTLStr := getEnv("ANALYSIS_CACHE_TTL", "10m")
	cfg.CacheTTL, err = time.ParseDuration(cacheTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYSIS_CACHE_TTL value: %w", err)
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, proxy := range strings.Split(proxies, ",") {
			cfg.TrustedProxies = append(cfg.TrustedProxies, strings.TrimSpace(proxy))
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
