package commands

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("DSBUILD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the standard logrus logger from the log_level and
// json_logs settings.
func SetupLogging() error {
	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logrus.SetLevel(level)
	if viper.GetBool("json_logs") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return nil
}

// parseIndexed parses "index=text" entries. Indices must be non-negative
// decimal integers; a repeated index keeps the last entry.
func parseIndexed(entries []string) (map[int]string, error) {
	out := make(map[int]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid entry %q, want index=value", entry)
		}
		key = strings.TrimSpace(key)
		// cast reads a leading zero as an octal prefix
		if digits := strings.TrimLeft(key, "0"); digits != key {
			key = cmp.Or(digits, "0")
		}
		idx, err := cast.ToIntE(key)
		if err != nil {
			return nil, fmt.Errorf("invalid index in %q: %w", entry, err)
		}
		if idx < 0 {
			return nil, fmt.Errorf("negative index in %q", entry)
		}
		out[idx] = value
	}
	return out, nil
}
