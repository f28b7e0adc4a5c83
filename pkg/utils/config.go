package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	PostgresURL string
	PublicDir   string
}

func LoadConfig() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg := Config{
		Port:        os.Getenv("PORT"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		PublicDir:   os.Getenv("PUBLIC_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	return cfg
}
