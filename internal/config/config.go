package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	CORS       CORSConfig
	Attendance AttendanceConfig
	Seed       SeedConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// Timezone names the business calendar used for "today" and the scheduler.
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AttendanceConfig struct {
	AutoCheckoutCron string
	AutoCheckoutTime string
	// LocationTimeout is the advisory budget clients get for a position fix.
	LocationTimeout time.Duration
}

// SeedConfig describes the administrator created on first start.
type SeedConfig struct {
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

// Load reads the environment, after merging a .env file when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "Asia/Kolkata"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// Attendance configuration
	locationTimeout, err := time.ParseDuration(getEnv("GEO_LOCATION_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEO_LOCATION_TIMEOUT: %w", err)
	}

	config.Attendance = AttendanceConfig{
		AutoCheckoutCron: getEnv("AUTO_CHECKOUT_CRON", "0 19 * * *"),
		AutoCheckoutTime: getEnv("AUTO_CHECKOUT_TIME", "19:00"),
		LocationTimeout:  locationTimeout,
	}

	config.Seed = SeedConfig{
		AdminEmail:    strings.ToLower(getEnv("SEED_ADMIN_EMAIL", "admin@hrms.com")),
		AdminName:     getEnv("SEED_ADMIN_NAME", "System Administrator"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if _, err := cron.ParseStandard(c.Attendance.AutoCheckoutCron); err != nil {
		return fmt.Errorf("invalid AUTO_CHECKOUT_CRON: %w", err)
	}
	if _, err := time.Parse("15:04", c.Attendance.AutoCheckoutTime); err != nil {
		return fmt.Errorf("AUTO_CHECKOUT_TIME must be HH:MM: %w", err)
	}
	if c.Seed.AdminPassword == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD must not be empty")
	}
	return nil
}

// Location returns the business timezone. Validate has already checked the name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
