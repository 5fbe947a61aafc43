package hookfsm

import (
	"github.com/caarlos0/env/v11"
)

// Config holds machine settings that can be supplied through the environment
type Config struct {
	MaxChainLength int `env:"HOOKFSM_MAX_CHAIN_LENGTH" envDefault:"1000"` // <= 0 disables the bound
}

// LoadConfig reads Config from environment variables
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
