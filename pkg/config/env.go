// Env loader
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	LogLevel   string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSchema   string

	// Remote quote source.
	BibleAPIBaseURL  string
	BibleTranslation string

	// Refresh scheduling. Jitter is drawn in whole hours in production;
	// see widget.SchedulerConfig for the step used by the draw.
	RefreshInitialDelay time.Duration
	RefreshJitterMin    time.Duration
	RefreshJitterMax    time.Duration
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DBHost:     getEnv("QUOTE_WIDGET_DB_HOST", "localhost"),
		DBPort:     getEnv("QUOTE_WIDGET_DB_PORT", "5432"),
		DBName:     getEnv("QUOTE_WIDGET_DB_DATABASE", "quote_widget"),
		DBUser:     getEnv("QUOTE_WIDGET_DB_USERNAME", "postgres"),
		DBPassword: getEnv("QUOTE_WIDGET_DB_PASSWORD", ""),
		DBSchema:   getEnv("QUOTE_WIDGET_DB_SCHEMA", "public"),

		BibleAPIBaseURL:  getEnv("BIBLE_API_BASE_URL", "https://bible-api.com"),
		BibleTranslation: getEnv("BIBLE_TRANSLATION", "kjv"),

		RefreshInitialDelay: getEnvDuration("REFRESH_INITIAL_DELAY", 10*time.Second),
		RefreshJitterMin:    getEnvDuration("REFRESH_JITTER_MIN", 4*time.Hour),
		RefreshJitterMax:    getEnvDuration("REFRESH_JITTER_MAX", 8*time.Hour),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
