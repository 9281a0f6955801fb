package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	NanoID   NanoIDConfig `mapstructure:"nanoid"`
	Entities []EntityConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type NanoIDConfig struct {
	Size     int    `mapstructure:"size"`
	Alphabet string `mapstructure:"alphabet"`
}

// EntityConfig binds an entity class to a prefix and a body scheme.
type EntityConfig struct {
	Name   string
	Prefix string
	Scheme string
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, rely on defaults and env vars.
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("nanoid.size", 21)
	v.SetDefault("nanoid.alphabet", "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	v.SetDefault("entities", []map[string]any{
		{"name": "customer", "prefix": "cus", "scheme": "crockford128"},
		{"name": "user", "prefix": "usr", "scheme": "cuid2"},
		{"name": "order", "prefix": "ord", "scheme": "ulid"},
		{"name": "session", "prefix": "ses", "scheme": "ksuid"},
		{"name": "device", "prefix": "dev", "scheme": "nanoid"},
		{"name": "trace", "prefix": "trc", "scheme": "uuid"},
	})

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("nanoid.size", "NANOID_SIZE")
	v.BindEnv("nanoid.alphabet", "NANOID_ALPHABET")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
