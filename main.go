package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"friendbook/config"
	"friendbook/database"
	"friendbook/handlers"
	"friendbook/middleware"
	"friendbook/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	db, driverName, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("running pending migrations")
	if err := database.Migrate(context.Background(), db, driverName); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	if cfg.CORSOrigins != "" {
		r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	friendHandler := handlers.NewFriendHandler(store.NewSQLFriendStore(db))
	friendHandler.RegisterRoutes(r)

	r.Static("/assets", cfg.AssetsDir)

	logger.Info("server starting", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
