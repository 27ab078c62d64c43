package config

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient متغیر برای دسترسی به Redis
var RedisClient *redis.Client

// InitRedis اتصال به Redis را راه‌اندازی می‌کند
func InitRedis(ctx context.Context) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     Env.RedisAddr,     // آدرس Redis
		Password: Env.RedisPassword, // رمز عبور
		DB:       Env.RedisDB,       // شماره دیتابیس
	})

	// بررسی اتصال به Redis
	s, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}
	Logger.Info("Connected to Redis", zap.String("ping", s))
}
