package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ReadConfigFromFile reads node configuration from ./configs/<name> with
// environment variable overrides.
func ReadConfigFromFile(name string) (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.SetConfigName(name)
	viper.AutomaticEnv()

	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.SetDefault("log_level", "info")
	viper.SetDefault("http.server_addr", "127.0.0.1:8000")
	viper.SetDefault("mining.difficulty_bits", 16)
	viper.SetDefault("mining.block_tx_count", 16)
	viper.SetDefault("mining.interval", "10s")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, errors.Wrap(err, "Error reading config file")
	}

	config := &Config{}

	err = viper.Unmarshal(config)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing config file")
	}

	return config, nil
}
