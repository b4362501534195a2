package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// MeterConfig selects the device link and poll behavior.
type MeterConfig struct {
	Transport  string  `mapstructure:"transport"`  // hid | serial | sim
	SerialPort string  `mapstructure:"serialPort"` // used when transport=serial
	PollHz     float64 `mapstructure:"pollHz"`
	WindowSize int     `mapstructure:"windowSize"`
}

// OutputConfig selects the consumer surface.
type OutputConfig struct {
	Mode string `mapstructure:"mode"` // tui | csv
}

// FileConfig is the rotating log file setup.
type FileConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

// LoggingConfig is the log level and output setup.
type LoggingConfig struct {
	Level string     `mapstructure:"level"`
	File  FileConfig `mapstructure:"file"`
}

type Config struct {
	Meter   MeterConfig   `mapstructure:"meter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load reads configuration from an optional yaml file plus UT61E_*
// environment variables, falling back to defaults that match the
// meter's physical behavior.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("UT61E")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("meter.transport", "hid")
	v.SetDefault("meter.serialPort", "")
	v.SetDefault("meter.pollHz", 6.0)
	v.SetDefault("meter.windowSize", 200)

	v.SetDefault("output.mode", "tui")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file.filename", "ut61e.log")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 14)
	v.SetDefault("logging.file.compress", false)
}

func validate(cfg *Config) error {
	switch cfg.Meter.Transport {
	case "hid", "sim":
	case "serial":
		if cfg.Meter.SerialPort == "" {
			return fmt.Errorf("meter.serialPort is required when meter.transport is serial")
		}
	default:
		return fmt.Errorf("unknown meter.transport %q (want hid, serial or sim)", cfg.Meter.Transport)
	}

	switch cfg.Output.Mode {
	case "tui", "csv":
	default:
		return fmt.Errorf("unknown output.mode %q (want tui or csv)", cfg.Output.Mode)
	}

	return nil
}
