package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/garden"

	"github.com/spf13/viper"
)

// Companion dataset sources
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Companion dataset configuration
	CompanionSource      string        `mapstructure:"COMPANION_SOURCE"`
	CompanionDatasetPath string        `mapstructure:"COMPANION_DATASET_PATH"`
	CompanionWatch       bool          `mapstructure:"COMPANION_WATCH"`
	CompanionDebounce    time.Duration `mapstructure:"COMPANION_WATCH_DEBOUNCE"`
	MaxSelectedPlants    int           `mapstructure:"MAX_SELECTED_PLANTS"`
	MaxAreaM2            float64       `mapstructure:"MAX_AREA_M2"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.CompanionSource = strings.ToLower(strings.TrimSpace(config.CompanionSource))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7010")
	v.SetDefault("LOG_LEVEL", "info")

	// Companion dataset defaults
	v.SetDefault("COMPANION_SOURCE", SourceFile)
	v.SetDefault("COMPANION_DATASET_PATH", "data/companions.json")
	v.SetDefault("COMPANION_WATCH", false)
	v.SetDefault("COMPANION_WATCH_DEBOUNCE", "500ms")
	v.SetDefault("MAX_SELECTED_PLANTS", 200)
	v.SetDefault("MAX_AREA_M2", 10000)

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "garden_planner")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.CompanionSource {
	case SourceFile:
		if config.CompanionDatasetPath == "" {
			return fmt.Errorf("COMPANION_DATASET_PATH is required for the file source")
		}
	case SourceDatabase:
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrDatasetSourceUnknown, config.CompanionSource)
	}

	if config.MaxSelectedPlants < 1 {
		return fmt.Errorf("MAX_SELECTED_PLANTS must be at least 1")
	}
	if config.MaxAreaM2 < 1 || config.MaxAreaM2 > garden.MaxGardenAreaM2 {
		return fmt.Errorf("MAX_AREA_M2 must be between 1 and %.0f", garden.MaxGardenAreaM2)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesDatabase reports whether the companion dataset lives in Postgres
func (c *Config) UsesDatabase() bool {
	return c.CompanionSource == SourceDatabase
}
