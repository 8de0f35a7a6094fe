package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"rumahmengaji_backend/internals/configs"
	database "rumahmengaji_backend/internals/databases"
	helper "rumahmengaji_backend/internals/helpers"
	middlewares "rumahmengaji_backend/internals/middlewares"
	routes "rumahmengaji_backend/internals/route"
)

func main() {
	logger := configs.InitLogger()
	defer func() { _ = logger.Sync() }()

	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FromFiberError,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// recover, request-id + timeout, access log, CORS, rate limit
	middlewares.SetupMiddlewares(app, configs.AllowedOrigins)

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB()
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.TunePool(db); err != nil {
		logger.Fatal("database pool setup failed", zap.Error(err))
	}
	if err := database.WarmUp(context.Background(), db); err != nil {
		logger.Warn("database warm-up failed", zap.Error(err))
	}

	// skema: AUTO_MIGRATE=false kalau migrasi dijalankan lewat cmd/admin
	if configs.GetEnv("AUTO_MIGRATE", "true") == "true" {
		if err := database.Migrate(db); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, db)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		logger.Info("listening", zap.String("port", port), zap.String("env", configs.AppEnv))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}
