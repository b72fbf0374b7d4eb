package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type SessionConfig struct {
	Secret      string `mapstructure:"secret"`
	CookieName  string `mapstructure:"cookie_name"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type DemoConfig struct {
	Email string `mapstructure:"email"`
	Name  string `mapstructure:"name"`
}

type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxRequests   int `mapstructure:"max_requests"`
}

type BankConfig struct {
	SandboxCompleteDelaySeconds int `mapstructure:"sandbox_complete_delay_seconds"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Demo      DemoConfig      `mapstructure:"demo"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Bank      BankConfig      `mapstructure:"bank"`
	Log       LogConfig       `mapstructure:"log"`
}

// SandboxDelay returns the sandbox auto-completion delay with a 5s default.
func (c *Config) SandboxDelay() time.Duration {
	if c.Bank.SandboxCompleteDelaySeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Bank.SandboxCompleteDelaySeconds) * time.Second
}

// RateLimitWindow returns the fixed rate-limit window with a 1m default.
func (c *Config) RateLimitWindow() time.Duration {
	if c.RateLimit.WindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. SY_SERVER_PORT=9000
		v.SetEnvPrefix("SY")
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
