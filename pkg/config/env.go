// Package config provides helpers for reading typed values from environment variables.
// Invalid values never fail: the default is used and a warning is logged.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// This function does not perform validation and does not log warnings.
//
// Example:
//
//	format := GetEnvString("LOG_FORMAT", "json")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of an environment variable as a boolean.
//
// Accepted true values: "1", "t", "T", "true", "TRUE", "True"
// Accepted false values: "0", "f", "F", "false", "FALSE", "False"
//
// If the environment variable is not set, empty, or has an invalid value,
// this function returns the default value and logs a warning.
//
// Example:
//
//	enabled := GetEnvBool("METRICS_ENABLED", true)
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return true
	case "0", "f", "F", "false", "FALSE", "False":
		return false
	default:
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
}

// GetEnvEnum returns the lower-cased value of an environment variable when it
// is one of allowed, otherwise the default value.
//
// A set but unrecognized value logs a warning.
//
// Example:
//
//	level := GetEnvEnum("LOG_LEVEL", "info", "debug", "info", "warn", "error")
func GetEnvEnum(key, defaultValue string, allowed ...string) string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := strings.ToLower(strings.TrimSpace(valueStr))
	for _, a := range allowed {
		if value == a {
			return value
		}
	}

	slog.Warn("unsupported value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", valueStr),
		slog.String("default", defaultValue),
		slog.String("allowed", strings.Join(allowed, ",")))
	return defaultValue
}
