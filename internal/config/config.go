package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит все настройки приложения
type Config struct {
	// Server
	Port string
	Host string

	// Database
	DatabaseURL string // Postgres DSN; если пусто — используется SQLite
	DBPath      string

	// Security
	JWTSecret     string
	JWTExpiration time.Duration

	// Bootstrap
	HeadmasterEmail    string
	HeadmasterPassword string

	// Telegram (опционально, уведомления для персонала)
	TelegramBotToken  string
	TelegramStaffChat int64
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	_ = godotenv.Load()

	config := &Config{
		Port:               getEnv("PORT", "5000"),
		Host:               getEnv("HOST", "0.0.0.0"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBPath:             getEnv("DB_PATH", "/tmp/school.db"),
		JWTSecret:          getEnv("JWT_SECRET", "brightpath_secret_key_2025"),
		JWTExpiration:      24 * time.Hour,
		HeadmasterEmail:    getEnv("HEADMASTER_EMAIL", "head@brightpath.com"),
		HeadmasterPassword: getEnv("HEADMASTER_PASSWORD", "123456"),
		TelegramBotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
	}

	if chatID, err := strconv.ParseInt(getEnv("TELEGRAM_STAFF_CHAT_ID", "0"), 10, 64); err == nil {
		config.TelegramStaffChat = chatID
	}

	if hours, err := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24")); err == nil && hours > 0 {
		config.JWTExpiration = time.Duration(hours) * time.Hour
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
