package config

import "time"

type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
	Http        struct {
		ServerAddr string `mapstructure:"server_addr"`
	} `mapstructure:"http"`
	Mining struct {
		MinerAddress   string        `mapstructure:"miner_address"`
		DifficultyBits uint          `mapstructure:"difficulty_bits"`
		BlockTxCount   int           `mapstructure:"block_tx_count"`
		Interval       time.Duration `mapstructure:"interval"`
	} `mapstructure:"mining"`
}
