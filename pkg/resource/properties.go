package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Init loads application properties from a YAML file and resolves ${ENV:default} placeholders.
// Keys from later calls override keys from earlier ones.
func Init(filepath string) error {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	properties := make(map[string]any)
	flatten("", reader.AllSettings(), properties)

	for key, value := range properties {
		viper.Set(key, value)
	}
	return nil
}

// flatten walks the YAML tree and collects dotted keys
func flatten(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			flatten(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value or its default.
// Values without a placeholder are returned untouched.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is unset or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := viper.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
