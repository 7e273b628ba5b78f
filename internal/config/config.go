package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Calculator struct {
		// ClearLedgerOnFacultyChange controls whether switching faculty
		// wipes the semester ledger or only the program selection.
		ClearLedgerOnFacultyChange bool `yaml:"clear_ledger_on_faculty_change" env:"CALC_CLEAR_LEDGER_ON_FACULTY_CHANGE"`
		// CreditsPerYear is the assumed study pace behind the projected
		// completion year.
		CreditsPerYear int `yaml:"credits_per_year" env:"CALC_CREDITS_PER_YEAR"`
	} `yaml:"calculator"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "gradepoint"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Calculator.ClearLedgerOnFacultyChange = false
	config.Calculator.CreditsPerYear = 15

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	config.Server.Port = GetEnv("SERVER_PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)

	config.Database.Host = GetEnv("DB_HOST", config.Database.Host)
	config.Database.Port = GetEnv("DB_PORT", config.Database.Port)
	config.Database.User = GetEnv("DB_USER", config.Database.User)
	config.Database.Password = GetEnv("DB_PASSWORD", config.Database.Password)
	config.Database.DBName = GetEnv("DB_NAME", config.Database.DBName)
	config.Database.SSLMode = GetEnv("DB_SSLMODE", config.Database.SSLMode)
	config.Database.MaxIdleConns = GetEnvAsInt("DB_MAX_IDLE_CONNS", config.Database.MaxIdleConns)
	config.Database.MaxOpenConns = GetEnvAsInt("DB_MAX_OPEN_CONNS", config.Database.MaxOpenConns)
	config.Database.ConnMaxLifetime = GetEnv("DB_CONN_MAX_LIFETIME", config.Database.ConnMaxLifetime)

	config.Calculator.ClearLedgerOnFacultyChange = GetEnvAsBool("CALC_CLEAR_LEDGER_ON_FACULTY_CHANGE", config.Calculator.ClearLedgerOnFacultyChange)
	config.Calculator.CreditsPerYear = GetEnvAsInt("CALC_CREDITS_PER_YEAR", config.Calculator.CreditsPerYear)

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)

	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime format: %w", err)
	}

	if config.Calculator.CreditsPerYear <= 0 {
		return fmt.Errorf("credits per year must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(GetEnv(key, ""))
	switch valueStr {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
