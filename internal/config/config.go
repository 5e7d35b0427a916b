package config

import (
	"flag"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress        string  `env:"RUN_ADDRESS" envDefault:"localhost:8081"`
	AccountAPIAddress string  `env:"ACCOUNT_API_ADDRESS" envDefault:"http://localhost:8080"`
	BotUsername       string  `env:"BOT_USERNAME" envDefault:"HubCoin_minerbot"`
	LogLevel          string  `env:"LOG_LEVEL" envDefault:"info"`
	RateLimitRPS      float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst    int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) ParseFlags() {
	var (
		runAddress     string
		accountAddress string
		botUsername    string
		logLevel       string
	)

	flag.StringVar(&runAddress, "a", "", "address host:port")
	flag.StringVar(&accountAddress, "r", "", "account service base URL")
	flag.StringVar(&botUsername, "b", "", "bot username for referral links")
	flag.StringVar(&logLevel, "l", "", "log level")

	flag.Parse()

	if runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if accountAddress != "" {
		cfg.AccountAPIAddress = accountAddress
	}

	if botUsername != "" {
		cfg.BotUsername = botUsername
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
