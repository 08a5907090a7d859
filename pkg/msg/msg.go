package msg

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mutex    sync.RWMutex
	messages = make(map[string]string)
)

// Init loads messages from YAML. Messages from a later file override earlier keys.
func Init(filepath string) error {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read messages %s: %w", filepath, err)
	}

	mutex.Lock()
	defer mutex.Unlock()
	parseMessageMap("", reader.AllSettings(), messages)
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args.
func GetMessage(key string, args ...interface{}) string {
	mutex.RLock()
	message, exists := messages[key]
	mutex.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		message = strings.ReplaceAll(message, fmt.Sprintf("{%d}", i), argToString(arg))
	}
	return message
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}

	switch reflect.TypeOf(arg).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return primitiveToString(arg)
	}

	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// primitiveToString converts a primitive value to string using strconv
func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
