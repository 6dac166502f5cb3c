package config

import (
	"os"

	"inventory-backend/pkg/database"

	"go.uber.org/zap"
)

type Config struct {
	Port string
	DB   database.Config
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnvDefault("PORT", "8080"),
		DB: database.Config{
			Host:     getEnv("DB_HOST", log),
			Port:     getEnvDefault("DB_PORT", "3306"),
			User:     getEnv("DB_USER", log),
			Password: getEnv("DB_PASSWORD", log),
			Name:     getEnv("DB_NAME", log),
		},
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}
