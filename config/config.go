// Package config loads settings for the example programs from an optional
// YAML file, an optional .env file and ANALYTICS_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kabu1204/go-analytics/logging"
)

const EnvPrefix = "ANALYTICS"

type Config struct {
	Log         logging.Config `mapstructure:"log"`
	Parallelism int            `mapstructure:"parallelism"`
	Random      RandomConfig   `mapstructure:"random"`
}

// RandomConfig drives the injected integer source of the frequency and
// distinct demos: Count values drawn uniformly from [Min, Max).
type RandomConfig struct {
	Seed  uint64 `mapstructure:"seed"`
	Count int    `mapstructure:"count"`
	Min   int    `mapstructure:"min"`
	Max   int    `mapstructure:"max"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.timestamp", true)
	v.SetDefault("parallelism", 4)
	v.SetDefault("random.seed", 42)
	v.SetDefault("random.count", 10000)
	v.SetDefault("random.min", 0)
	v.SetDefault("random.max", 10)
}

// Load reads configFile (skipped when empty) and envFile (skipped when empty
// or missing), then overlays the environment.
func Load(configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("load env file %s: %w", envFile, err)
			}
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism must be >= 0, got %d", c.Parallelism))
	}
	if c.Random.Count < 0 {
		errs = append(errs, fmt.Errorf("random.count must be >= 0, got %d", c.Random.Count))
	}
	if c.Random.Min >= c.Random.Max {
		errs = append(errs, fmt.Errorf("random.min (%d) must be below random.max (%d)", c.Random.Min, c.Random.Max))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
