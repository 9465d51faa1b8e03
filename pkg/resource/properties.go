// Package resource exposes the application properties file. String values may
// reference environment variables as ${NAME} or ${NAME:default}.
package resource

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Path returns the properties file location, honouring PROPERTIES_FILE_PATH.
func Path() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok && value != "" {
		return value
	}
	return defaultPropertiesPath
}

// Init reads the YAML file at filepath and resolves every placeholder against the environment.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read properties %s: %w", filepath, err)
	}

	resolvePlaceholders(v, "", v.AllSettings())

	mu.Lock()
	properties = v
	mu.Unlock()
	return nil
}

// resolvePlaceholders walks the settings tree and overrides every string holding a placeholder.
func resolvePlaceholders(v *viper.Viper, prefix string, data map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch typed := value.(type) {
		case string:
			if envPattern.MatchString(typed) {
				v.Set(fullKey, ResolveEnv(typed))
			}
		case map[string]any:
			resolvePlaceholders(v, fullKey, typed)
		}
	}
}

// ResolveEnv replaces each ${NAME:default} occurrence in value.
// A variable that is set, even to an empty string, wins over the default.
func ResolveEnv(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// Set overrides a single property, mostly useful in tests.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.Set(key, value)
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns the trimmed property or fallback when it is blank.
func GetStringOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(current().GetString(key)); value != "" {
		return value
	}
	return fallback
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

// GetDurationOrDefault returns the property as a duration or fallback when unset or not positive.
func GetDurationOrDefault(key string, fallback time.Duration) time.Duration {
	if value := current().GetDuration(key); value > 0 {
		return value
	}
	return fallback
}

func GetInt(key string) int {
	return current().GetInt(key)
}

// GetIntOrDefault returns the property or fallback when unset or not positive.
func GetIntOrDefault(key string, fallback int) int {
	if value := current().GetInt(key); value > 0 {
		return value
	}
	return fallback
}

// GetStringSlice accepts both YAML lists and semicolon separated strings.
// Semicolons are used because list items such as "Thane,IN" carry commas.
func GetStringSlice(key string) []string {
	raw := current().Get(key)
	if s, ok := raw.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ";") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return current().GetStringSlice(key)
}
