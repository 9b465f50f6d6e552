package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/app"
	"github.com/KailasVS666/Inventory-Management-System/internal/handler"
	mid "github.com/KailasVS666/Inventory-Management-System/internal/middleware"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/pkg/config"
	"github.com/KailasVS666/Inventory-Management-System/pkg/jwtutil"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory server", appConfig.LogConfig()...)

	application, err := app.New(appConfig, log, store.Options{})
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx, app.DiscardFromConfig(appConfig)); err != nil {
		if errors.Is(err, app.ErrCorruptNotAcknowledged) {
			log.Fatal("Refusing to start on corrupt data; set DISCARD_CORRUPT_DATA=true to quarantine it and continue", zap.Error(err))
		}
		log.Fatal("Failed to load data", zap.Error(err))
	}

	jwt := jwtutil.NewJWTUtil(&appConfig.JWT)
	log.Info("JWT utility initialized", zap.Int("expiration_hours", appConfig.JWT.ExpirationHours))

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handler.New(application.Inventory, application.Reports, jwt, appConfig.Storage.ExportDir).Register(e)

	go func() {
		port := appConfig.Server.Port
		log.Info("Starting server", zap.String("port", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := application.Inventory.SaveAll(shutdownCtx); err != nil {
		log.Error("Failed to save data on shutdown", zap.Error(err))
	}
}
