// Package msg holds the message catalogue used by logs and error bodies.
// Messages use positional placeholders: "saved sample {0} for {1}".
package msg

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const defaultMessagesPath = "configs/messages.yml"

var (
	mu       sync.RWMutex
	messages = map[string]string{}
)

// Path returns the catalogue location, honouring MESSAGES_FILE_PATH.
func Path() string {
	if value, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok && value != "" {
		return value
	}
	return defaultMessagesPath
}

// Init loads the YAML catalogue at filepath, replacing any previous one.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read messages %s: %w", filepath, err)
	}

	loaded := make(map[string]string)
	flatten("", v.AllSettings(), loaded)

	mu.Lock()
	messages = loaded
	mu.Unlock()
	return nil
}

// Register adds or replaces a single message.
func Register(key, message string) {
	mu.Lock()
	defer mu.Unlock()
	messages[key] = message
}

func flatten(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			flatten(fullKey, v, result)
		}
	}
}

// GetMessage returns the message for key with {n} replaced by the nth argument.
// Unknown keys yield the key itself so callers still log something useful.
func GetMessage(key string, args ...any) string {
	mu.RLock()
	message, exists := messages[key]
	mu.RUnlock()
	if !exists {
		message = key
	}

	for i, arg := range args {
		message = strings.ReplaceAll(message, "{"+strconv.Itoa(i)+"}", stringify(arg))
	}
	return message
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int8, int16, int32, uint, uint8, uint16, uint32, uint64, float32:
		return fmt.Sprintf("%v", v)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}
