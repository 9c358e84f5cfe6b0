package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"warung/internal/ratelimit"
)

// Config настройки сервиса, собранные из .env и переменных окружения
type Config struct {
	Port           string
	WhatsAppNumber string
	CatalogPath    string
	OrderAttempts  int
	OrderWindow    time.Duration
}

// Load подхватывает .env, если он есть, и читает окружение с умолчаниями
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return Config{
		Port:           getenv("PORT", "9091"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "62895332782122"),
		CatalogPath:    getenv("CATALOG_PATH", "configs/catalog.yaml"),
		OrderAttempts:  getenvInt("ORDER_MAX_ATTEMPTS", ratelimit.DefaultMaxAttempts),
		OrderWindow:    time.Duration(getenvInt("ORDER_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: ignoring %s=%q", key, v)
		return def
	}
	return n
}
