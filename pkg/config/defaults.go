package config

import (
	"strings"
	"time"
)

// Default values.
const (
	DefaultLogLevel    = "WARN"
	DefaultLogFormat   = "text"
	DefaultLogOutput   = "stderr"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultUserAgent   = "idmctl"
	DefaultCookieName  = "iPlanetDirectoryPro"
	DefaultRealm       = "/"
	DefaultOutput      = "table"
	DefaultSessionTTL  = 2 * time.Hour
)

// ApplyDefaults sets default values for any unspecified configuration fields.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyHTTPDefaults(&cfg.HTTP)
	applyDefaultsDefaults(&cfg.Defaults)
	applyCacheDefaults(&cfg.Cache)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = DefaultLogLevel
	}
	cfg.Level = strings.ToUpper(cfg.Level)
	if cfg.Level == "WARNING" {
		cfg.Level = "WARN"
	}
	if cfg.Format == "" {
		cfg.Format = DefaultLogFormat
	}
	if cfg.Output == "" {
		cfg.Output = DefaultLogOutput
	}
}

func applyHTTPDefaults(cfg *HTTPConfig) {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultHTTPTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
}

func applyDefaultsDefaults(cfg *DefaultsConfig) {
	if cfg.Realm == "" {
		cfg.Realm = DefaultRealm
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	cfg.DeploymentType = strings.ToLower(cfg.DeploymentType)
}

func applyCacheDefaults(cfg *CacheConfig) {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
}

// GetDefaultConfig returns a Config with all default values applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
