package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Report ReportConfig
	Batch  BatchConfig
	Server ServerConfig
	Log    LogConfig
}

// ReportConfig holds defaults applied when a caller omits them
type ReportConfig struct {
	Alpha  float64
	Sort   bool
	Format string
}

// BatchConfig holds batch evaluation settings
type BatchConfig struct {
	Workers int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level internal.LogLevel
}

// Formats accepted by PCORR_FORMAT
var Formats = []string{"text", "markdown", "json"}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	report, err := loadReportConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load report configuration")
	}

	batch, err := loadBatchConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load batch configuration")
	}

	logConfig, err := loadLogConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load log configuration")
	}

	return &Config{
		Report: *report,
		Batch:  *batch,
		Server: *loadServerConfig(),
		Log:    *logConfig,
	}, nil
}

func loadReportConfig() (*ReportConfig, error) {
	alpha, err := getEnvFloatOrDefault("PCORR_ALPHA", correction.DefaultAlpha)
	if err != nil {
		return nil, err
	}
	if err := correction.ValidateAlpha(alpha); err != nil {
		return nil, errors.ConfigInvalid(fmt.Sprintf("PCORR_ALPHA: %v", err))
	}

	sortInput, err := getEnvBoolOrDefault("PCORR_SORT", true)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(getEnvOrDefault("PCORR_FORMAT", "text"))
	if !validFormat(format) {
		return nil, errors.ConfigInvalid(fmt.Sprintf("PCORR_FORMAT must be one of %s, got %q", strings.Join(Formats, "|"), format))
	}

	return &ReportConfig{
		Alpha:  alpha,
		Sort:   sortInput,
		Format: format,
	}, nil
}

func loadBatchConfig() (*BatchConfig, error) {
	workers, err := getEnvIntOrDefault("PCORR_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, errors.ConfigInvalid(fmt.Sprintf("PCORR_WORKERS must be positive, got %d", workers))
	}
	return &BatchConfig{Workers: workers}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadLogConfig() (*LogConfig, error) {
	raw := os.Getenv("LOG_LEVEL")
	level, ok := internal.ParseLogLevel(raw)
	if raw != "" && !ok {
		return nil, errors.ConfigInvalid(fmt.Sprintf("LOG_LEVEL %q is not one of ERROR|WARN|INFO|DEBUG|TRACE", raw))
	}
	return &LogConfig{Level: level}, nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s must be an integer, got %q", key, value))
	}
	return intValue, nil
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s must be a number, got %q", key, value))
	}
	return floatValue, nil
}

func getEnvBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.ConfigInvalid(fmt.Sprintf("%s must be a boolean, got %q", key, value))
	}
	return boolValue, nil
}
