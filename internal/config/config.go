package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host" envconfig:"SERVER_HOST" default:"0.0.0.0"`
		Port int    `yaml:"port" envconfig:"PORT" default:"8000"`
		Env  string `yaml:"env" envconfig:"SERVER_ENV" default:"development"`
	} `yaml:"server"`

	Database struct {
		// URL и Name могут отсутствовать: приложение тогда работает
		// в деградированном режиме без подключения к хранилищу.
		URL  string `yaml:"url" envconfig:"DATABASE_URL"`
		Name string `yaml:"name" envconfig:"DATABASE_NAME"`
	} `yaml:"database"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env подхватывается если есть, ошибок не бросаем
	_ = godotenv.Load()

	if os.Getenv("DATABASE_URL") == "" && os.Getenv("CONFIG_PATH") != "" {
		log.Println("Загрузка из config.yaml")

		configPath := os.Getenv("CONFIG_PATH")

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		if cfg.Server.Port == 0 {
			cfg.Server.Port = 8000
		}
		if cfg.Server.Env == "" {
			cfg.Server.Env = "development"
		}

		AppConfig = &cfg
		return
	}

	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load config from environment: %v", err)
	}

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
