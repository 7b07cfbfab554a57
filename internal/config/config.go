package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the game reads.
const EnvPrefix = "NEUROBATTLE"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files, environment
// variables and command-line flags.
type Config struct {
	Env       string `mapstructure:"env"`        // local, production
	BankPath  string `mapstructure:"bank_path"`  // question bank file; empty uses the embedded bank
	AssetsDir string `mapstructure:"assets_dir"` // base directory for image locators
	Seed      uint64 `mapstructure:"seed"`       // shuffle seed; 0 means random
	Log       Log    `mapstructure:"log"`        // logging section
}

// Log contains logging parameters.
type Log struct {
	File  string `mapstructure:"file"`  // log destination; empty disables logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit config file path. When empty the default
	// search paths are used.
	ConfigFile string

	// EnvFile is loaded into the process environment before reading.
	// Defaults to ".env"; a missing file is not an error.
	EnvFile string

	// Flags are bound over file and environment values when set.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"bank":      "bank_path",
	"assets":    "assets_dir",
	"seed":      "seed",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load reads configuration with precedence flags > env > file > defaults.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if filepath.Ext(opts.ConfigFile) == "" {
			v.SetConfigType("yaml")
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "neurobattle"))
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("bank_path", "")
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("seed", 0)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// NEUROBATTLE_LOG_FILE -> log.file
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}
