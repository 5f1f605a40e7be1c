package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type TasksetConfig struct {
	Path string `mapstructure:"path"`
}

type SimulationConfig struct {
	// FallbackDuration is the simulated duration used when the task set is
	// empty and the hyperperiod is therefore undefined.
	FallbackDuration int `mapstructure:"fallback_duration"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Taskset    TasksetConfig    `mapstructure:"taskset"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// InitConfig loads configuration from a toml file with RTSCHED_* environment
// overrides. A missing config file is fine: every setting has a default or a
// CLI flag.
func InitConfig(configName string, configPath string) (Config, error) {
	var cfg Config
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	viper.AddConfigPath(".")
	if configName == "" {
		configName = "rtsched"
	}
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("RTSCHED")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("simulation.fallback_duration", 100)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "read config")
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}
