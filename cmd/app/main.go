package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbadapter "postboard/internal/adapters/database"
	"postboard/internal/adapters/httpapi"
	redisadapter "postboard/internal/adapters/redis"
	"postboard/internal/config"
	feedapp "postboard/internal/core/feed/service"
	postapp "postboard/internal/core/post/service"
	userapp "postboard/internal/core/user/service"
	"postboard/internal/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	loaded := config.LoadDotEnv() // قبل از logger تا APP_ENV از .env خوانده شود
	config.InitLogger(os.Getenv("APP_ENV"))
	defer config.Logger.Sync() // flush buffer
	if !loaded {
		config.Logger.Info("No .env file found, using system environment variables")
	}
	config.Init() // بارگذاری تنظیمات

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	config.InitDB()
	if err := dbadapter.Migrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	// اتصال به Redis
	config.InitRedis(ctx)

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger)

	if config.Env.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := config.Logger
	jwtSecret := []byte(config.Env.JWTSecret)

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)          // آداپتر خروجی
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)          // آداپتر خروجی
	activityRepo := dbadapter.NewActivityRepositoryDatabase(config.DB)  // آداپتر خروجی
	tx := dbadapter.NewTransactor(config.DB)                            // آداپتر خروجی
	feedRepo := redisadapter.NewFeedRepositoryRedis(config.RedisClient) // آداپتر خروجی

	userSvc := userapp.NewUserService(userRepo, postRepo, activityRepo, tx, logger, jwtSecret) // یوزکیس/سرویس
	postSvc := postapp.NewPostService(postRepo, userRepo, activityRepo, tx, logger)            // یوزکیس/سرویس
	feedSvc := feedapp.NewFeedService(feedRepo, postRepo)                                      // یوزکیس/سرویس
	r := httpapi.SetupRoutes(userSvc, postSvc, feedSvc, jwtSecret, logger)                     // تزریق یوزکیس به آداپتر ورودی

	activityWorker := workers.NewActivityWorker(activityRepo, feedRepo, config.Env.BatchSize, config.Env.FeedSize, logger)

	// اجرای worker در پس‌زمینه
	go activityWorker.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + config.Env.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed:", zap.Error(err))
		}
	}()

	logger.Info("App is running...", zap.String("port", config.Env.AppPort))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger) {
	// بستن اتصال به Redis
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	// بستن اتصال دیتابیس
	sqlDB, err := config.DB.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
