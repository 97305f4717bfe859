// File: app/app.go
package app

import (
	"context"
	"faction-api/config"
	"faction-api/db"
	"faction-api/handler"
	"faction-api/logger"
	"faction-api/repository"
	"faction-api/router"
	"faction-api/service"
	"faction-api/store"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the document store: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	documentStore := store.NewRedisStore(redisClient)

	userRepo := repository.NewUserRepository(documentStore)
	tokenRepo := repository.NewTokenRepository(documentStore)

	authService := service.NewAuthService(userRepo, tokenRepo, config.AppConfig)
	factionService := service.NewFactionService(documentStore)

	userHandler := handler.NewUserHandler(userRepo, authService)
	factionHandler := handler.NewFactionHandler(factionService)

	r := router.NewRouter(userHandler, factionHandler, handler.AuthMiddleware(authService))

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
