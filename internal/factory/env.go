package factory

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/aduwothevillian/GameVault/internal/model"
	redisstorage "github.com/aduwothevillian/GameVault/internal/storage/redis"
)

// envConfig maps process environment variables onto factory settings
type envConfig struct {
	Owner       string `env:"GAMEVAULT_OWNER,required"`
	StorageType string `env:"GAMEVAULT_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"GAMEVAULT_REDIS_URL" envDefault:"redis://localhost:6379"`
}

// ConfigFromEnv builds a factory Config from environment variables
func ConfigFromEnv() (Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		Owner:       model.Identity(ec.Owner),
		StorageType: ec.StorageType,
	}

	if ec.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = ec.RedisURL
		cfg.RedisConfig = &redisCfg
	}

	return cfg, nil
}
