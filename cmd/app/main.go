package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ramidoush/Automatic-PO/internal/config"
	"github.com/ramidoush/Automatic-PO/internal/db"
	httpServer "github.com/ramidoush/Automatic-PO/internal/http"
	"github.com/ramidoush/Automatic-PO/internal/logger"
	"github.com/ramidoush/Automatic-PO/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	database := db.Connect(cfg.DBPath)
	defer database.Close()

	// Schema creation failure is reported but not fatal: the app keeps
	// serving and each data operation surfaces its own error to the user.
	orders := repository.NewPurchaseOrderRepository(database)
	if err := orders.EnsureSchema(context.Background()); err != nil {
		logger.Error("failed to ensure schema", "error", err)
	}

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, database, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
