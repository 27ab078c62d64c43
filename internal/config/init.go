package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Settings تنظیمات برنامه که از .env یا متغیرهای محیطی خوانده می‌شود
type Settings struct {
	AppEnv        string
	AppPort       string
	DBDriver      string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	BatchSize     int
	FeedSize      int64
}

var Env Settings

// Init loads .env when present and fills Env. Missing required keys are fatal.
// LoadDotEnv copies the given files (default .env) into the process
// environment without overriding variables already set. It reports whether
// anything was loaded. Call it before InitLogger so APP_ENV from .env applies.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

func Init() {
	s, err := Load(os.Getenv)
	if err != nil {
		Logger.Fatal("Invalid configuration", zap.Error(err))
	}
	Env = s
}

// Load reads settings through getenv and applies defaults.
func Load(getenv func(string) string) (Settings, error) {
	s := Settings{
		AppEnv:        getenv("APP_ENV"),
		AppPort:       getenv("APP_PORT"),
		DBDriver:      getenv("DB_DRIVER"),
		DBDSN:         getenv("DB_DSN"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		JWTSecret:     getenv("JWT_SECRET"),
	}

	if s.AppEnv == "" {
		s.AppEnv = "development"
	}
	if s.AppPort == "" {
		s.AppPort = "8080"
	}
	if s.DBDriver == "" {
		s.DBDriver = DriverMySQL
	}

	switch {
	case s.DBDSN == "":
		return s, fmt.Errorf("DB_DSN is not set")
	case s.RedisAddr == "":
		return s, fmt.Errorf("REDIS_ADDR is not set")
	case s.JWTSecret == "":
		return s, fmt.Errorf("JWT_SECRET is not set")
	}

	// مقدار پیش‌فرض در صورت نامعتبر بودن
	s.RedisDB = atoiOr(getenv("REDIS_DB"), 0)
	s.BatchSize = atoiOr(getenv("BATCH_SIZE"), 100)
	s.FeedSize = int64(atoiOr(getenv("FEED_SIZE"), 1000))
	return s, nil
}

func atoiOr(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
