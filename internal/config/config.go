// Package config loads the settings of the dectab server from a file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvPort          = "DECTAB_PORT"
	EnvRedisAddr     = "DECTAB_REDIS_ADDR"
	EnvLogLevel      = "DECTAB_LOG_LEVEL"
	EnvMaxInputSize  = "DECTAB_MAX_INPUT_SIZE"
	EnvEncryptionKey = "DECTAB_ENCRYPTION_KEY"
)

// Config is the root of dectab.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Redis   RedisConfig   `yaml:"redis" json:"redis"`
	Limits  LimitsConfig  `yaml:"limits" json:"limits"`
	Log     LogConfig     `yaml:"log" json:"log"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
}

type ServerConfig struct {
	Port int `yaml:"port" json:"port"`
}

// RedisConfig selects the Redis table store. An empty Addr keeps tables in memory.
type RedisConfig struct {
	Addr     string   `yaml:"addr" json:"addr"`
	Password string   `yaml:"password" json:"password"`
	DB       int      `yaml:"db" json:"db"`
	TTL      Duration `yaml:"ttl" json:"ttl"`
	Prefix   string   `yaml:"prefix" json:"prefix"`
}

type LimitsConfig struct {
	MaxInputSize int `yaml:"max_input_size" json:"max_input_size"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// StorageConfig enables encryption at rest when EncryptionKey (base64, 32 bytes) is set.
type StorageConfig struct {
	EncryptionKey string `yaml:"encryption_key" json:"encryption_key"`
}

// Duration is a time.Duration written as "90s" or "24h" in configuration files.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Redis:  RedisConfig{Prefix: "dectab:"},
		Limits: LimitsConfig{MaxInputSize: 64 * 1024},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a configuration file (YAML or JSON) on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvEncryptionKey); v != "" {
		cfg.Storage.EncryptionKey = v
	}
	if v := os.Getenv(EnvMaxInputSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxInputSize, err)
		}
		cfg.Limits.MaxInputSize = size
	}
	return nil
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Limits.MaxInputSize < 0 {
		return fmt.Errorf("invalid max_input_size %d", c.Limits.MaxInputSize)
	}
	if c.Redis.TTL.Duration < 0 {
		return fmt.Errorf("invalid redis ttl %s", c.Redis.TTL)
	}
	return nil
}
