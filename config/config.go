package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	API      APIConfig
	Telegram TelegramConfig
	Delivery DeliveryConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type APIConfig struct {
	Port    string // port the backend listens on ("api" subcommand)
	BaseURL string // where the storefront bot reaches the backend
}

type TelegramConfig struct {
	Token string
}

type DeliveryConfig struct {
	FreeAbove int64 // subtotal above which delivery is free
	Fee       int64 // flat fee at or below the threshold
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	freeAbove, _ := strconv.ParseInt(getEnv("FREE_DELIVERY_ABOVE", "200"), 10, 64)
	fee, _ := strconv.ParseInt(getEnv("DELIVERY_FEE", "30"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "qff"),
		},
		API: APIConfig{
			Port:    getEnv("PORT", "8000"),
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Delivery: DeliveryConfig{
			FreeAbove: freeAbove,
			Fee:       fee,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
