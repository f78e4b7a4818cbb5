package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerConfig  ServerConfig  `yaml:"server"`
	StorageConfig StorageConfig `yaml:"storage"`
	SessionConfig SessionConfig `yaml:"session"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT" env-default:"25565"`
}

type StorageConfig struct {
	DSN string `yaml:"dsn" env:"STORAGE_DSN" env-default:":memory:"`
}

type SessionConfig struct {
	Secret     string        `yaml:"secret" env:"SESSION_SECRET" env-default:"midterm-dev-secret"`
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE" env-default:"name"`
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
}

// MustLoad reads config.yaml (or CONFIG_PATH) when present and falls back to
// environment variables otherwise. Defaults reproduce the fixed values the
// app has always run with, so no configuration is required.
func MustLoad() Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var config Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &config); err != nil {
			log.Fatalf("config not read: %v", err)
		}
		return config
	}

	if err := cleanenv.ReadEnv(&config); err != nil {
		log.Fatalf("config not read: %v", err)
	}
	return config
}
