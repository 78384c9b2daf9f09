package client

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/campushub/campus-client/client/api"
	"github.com/campushub/campus-client/internal/xtime"
)

func LoadConfig(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := defaultConfig()
	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		API: api.Config{
			BaseURL: "http://127.0.0.1:8000/api",
			Timeout: xtime.Duration(15 * time.Second),
			Every:   xtime.Duration(1 * time.Second),
			Burst:   40,
		},
	}
}

type Config struct {
	Dev bool       `toml:"dev"`
	Log LogConfig  `toml:"log"`
	API api.Config `toml:"api"`
}

func (c Config) String() string {
	return fmt.Sprintf("Dev: %t\nLog: %s\nAPI: %s",
		c.Dev,
		c.Log,
		c.API,
	)
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}
