package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Source     Source   `yaml:"source"`
	Notifier   Notifier `yaml:"notifier"`
	Sync       Sync     `yaml:"sync"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Source configures the simulated network latency of the mock data source.
type Source struct {
	Latency time.Duration `yaml:"latency" env-default:"800ms"`
}

type Notifier struct {
	DefaultDuration time.Duration `yaml:"default_duration" env-default:"4s"`
}

// Sync controls the background refresh that detects edit conflicts.
type Sync struct {
	Interval time.Duration `yaml:"interval" env-default:"1m"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
