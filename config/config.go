package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DatabaseDSN   string
	TokenSecret   string
	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
	ResetBaseURL  string
}

func LoadConfig() (Config, error) {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
		ResetBaseURL:  os.Getenv("RESET_BASE_URL"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":3000"
	}
	if cfg.DatabaseDSN == "" {
		return cfg, errors.New("DATABASE_DSN is required")
	}
	if cfg.TokenSecret == "" {
		return cfg, errors.New("TOKEN_SECRET is required")
	}

	return cfg, nil
}
