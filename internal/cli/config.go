package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphbridge/internal/server"
	"github.com/matzehuels/graphbridge/pkg/convert"
	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

// Config is the TOML configuration file.
//
//	[convert]
//	default_to = "graphml"
//
//	[server]
//	addr = ":9000"
//	max_body_bytes = 1048576
//
//	[log]
//	level = "debug"
type Config struct {
	Convert ConvertConfig `toml:"convert"`
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
}

// ConvertConfig holds defaults for the convert command.
type ConvertConfig struct {
	// DefaultTo is the output format used when neither --to nor the output
	// file extension names one.
	DefaultTo string `toml:"default_to"`
}

// ServerConfig holds the serve command's listener settings.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// LogConfig holds the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Convert: ConvertConfig{DefaultTo: string(convert.JSON)},
		Server: ServerConfig{
			Addr:         server.DefaultAddr,
			MaxBodyBytes: server.DefaultMaxBodyBytes,
		},
		Log: LogConfig{Level: "info"},
	}
}

// loadConfig reads path on top of the defaults. A missing file yields the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Convert.DefaultTo != "" {
		if _, err := convert.ParseFormat(c.Convert.DefaultTo); err != nil {
			return err
		}
	}
	if c.Log.Level != "" {
		if _, err := parseLevel(c.Log.Level); err != nil {
			return err
		}
	}
	if c.Server.MaxBodyBytes < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "max_body_bytes must not be negative")
	}
	return nil
}

// level returns the configured log level, defaulting to info.
func (c Config) level() log.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}
