package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the idmctl configuration.
//
// It covers the settings that apply to every invocation regardless of the
// target tenant. Per-tenant connection data (host, username, password,
// deployment type) lives in the connection profile store, not here.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (IDMCTL_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls diagnostic log output
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// HTTP controls the tenant API client
	HTTP HTTPConfig `mapstructure:"http" yaml:"http"`

	// Defaults holds values used when a flag is omitted
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`

	// Cache controls session token reuse across invocations
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// HTTPConfig configures the API client.
type HTTPConfig struct {
	// Timeout bounds every request to the tenant
	Timeout time.Duration `mapstructure:"timeout" validate:"required,gt=0" yaml:"timeout"`

	// Insecure disables TLS certificate verification
	Insecure bool `mapstructure:"insecure" yaml:"insecure"`

	// UserAgent is sent with every request
	UserAgent string `mapstructure:"user_agent" validate:"required" yaml:"user_agent"`

	// CookieName is the session cookie name the tenant expects
	CookieName string `mapstructure:"cookie_name" validate:"required" yaml:"cookie_name"`
}

// DefaultsConfig holds fallback values for omitted flags.
type DefaultsConfig struct {
	// Realm is used when neither --realm nor the profile names one
	Realm string `mapstructure:"realm" validate:"required" yaml:"realm"`

	// Output is the listing format
	Output string `mapstructure:"output" validate:"required,oneof=table json yaml" yaml:"output"`

	// DeploymentType is used when neither --type nor the profile names one
	DeploymentType string `mapstructure:"deployment_type" validate:"omitempty,oneof=cloud forgeops classic" yaml:"deployment_type,omitempty"`
}

// CacheConfig controls session token caching.
type CacheConfig struct {
	// Disabled turns off token reuse; every invocation authenticates
	Disabled bool `mapstructure:"disabled" yaml:"disabled"`

	// SessionTTL is the assumed token lifetime when the token carries no expiry
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"required,gt=0" yaml:"session_ttl"`
}

// Load loads configuration from file, environment, and defaults.
//
// An empty configPath uses the default location. A missing file is not an
// error: defaults and environment variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

// newValidator reports fields by their config key instead of the Go name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	return v
}

// Validate checks the configuration against its struct tags. Every problem
// is reported by config key, e.g. "http.timeout must be greater than 0".
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fmt.Sprint(fe.Value()))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}

// SaveConfig saves the configuration to the specified file path in YAML.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setupViper configures viper with environment variables, defaults and the
// config file location.
func setupViper(v *viper.Viper, configPath string) {
	// Example: IDMCTL_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("IDMCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("cache.disabled", "IDMCTL_CACHE_DISABLED", "IDMCTL_NO_CACHE")

	// Unmarshal only sees keys viper knows about, so every key gets a default.
	setViperDefaults(v, GetDefaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// setViperDefaults registers every leaf of d under its dotted mapstructure
// key, e.g. "http.timeout".
func setViperDefaults(v *viper.Viper, d *Config) {
	var walk func(prefix string, val reflect.Value)
	walk = func(prefix string, val reflect.Value) {
		t := val.Type()
		for i := 0; i < t.NumField(); i++ {
			name, _, _ := strings.Cut(t.Field(i).Tag.Get("mapstructure"), ",")
			if name == "" {
				continue
			}
			key := prefix + name
			field := val.Field(i)
			switch {
			case field.Type() == reflect.TypeOf(time.Duration(0)):
				v.SetDefault(key, time.Duration(field.Int()).String())
			case field.Kind() == reflect.Struct:
				walk(key+".", field)
			default:
				v.SetDefault(key, field.Interface())
			}
		}
	}
	walk("", reflect.ValueOf(d).Elem())
}

// readConfigFile reads the configuration file. A missing file is not an
// error.
func readConfigFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

// configDecodeHooks returns a combined decode hook for all custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		durationDecodeHook(),
	)
}

// durationDecodeHook returns a mapstructure decode hook that converts strings
// like "30s", "5m" or "2h" to time.Duration.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			// Raw integers are seconds
			return time.Duration(v) * time.Second, nil
		case int64:
			return time.Duration(v) * time.Second, nil
		case float64:
			return time.Duration(v * float64(time.Second)), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns $XDG_CONFIG_HOME/idmctl, falling back to
// ~/.config/idmctl, or the current directory if no home is known.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "idmctl")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "idmctl")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
