package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/photocards/config"
	"github.com/oksasatya/photocards/internal/container"
	"github.com/oksasatya/photocards/internal/infrastructure/mongodb"
	"github.com/oksasatya/photocards/internal/router"
	"github.com/oksasatya/photocards/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	secret, fallback, err := cfg.TokenSecret()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if fallback {
		logger.Warn("JWT_SECRET is not set, signing tokens with the development secret")
	}
	jwtManager := helpers.NewJWTManager(secret, cfg.JWTTTL)

	ctx := context.Background()

	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() {
		ctxDisconnect, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctxDisconnect); err != nil {
			logger.WithError(err).Error("mongodb disconnect failed")
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureSchema(ctx, db); err != nil {
		logger.WithError(err).Error("failed to ensure mongodb schema")
		return
	}

	r := router.NewEngine(container.NewMongo(cfg, logger, jwtManager, db))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
		return
	}
	logger.Info("server exited properly")
}
