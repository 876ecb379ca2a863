package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	HTTPAddr      string
	DatabaseURL   string
	TelegramToken string
	AdminChatID   int64
}

var instance *AppConfig
var once sync.Once

func GetAppConfig() *AppConfig {
	once.Do(func() {
		instance = &AppConfig{}

		// .env is optional, the environment may already be populated.
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err.Error())
		}

		instance.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		if instance.DatabaseURL == "" {
			logrus.Fatal("could not get db url")
		}

		// Notifications are optional; both values must be set to enable them.
		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		instance.AdminChatID = getEnvAsInt("ADMIN_CHAT_ID", 0)
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
