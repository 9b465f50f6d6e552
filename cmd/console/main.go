package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/KailasVS666/Inventory-Management-System/internal/app"
	"github.com/KailasVS666/Inventory-Management-System/internal/console"
	"github.com/KailasVS666/Inventory-Management-System/internal/store"
	"github.com/KailasVS666/Inventory-Management-System/pkg/config"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	dataDir := flag.String("data", "", "data directory (overrides DATA_DIR)")
	flag.Parse()

	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		appConfig.Storage.DataDir = *dataDir
	}
	// keep the menus readable; logs go to stderr
	if os.Getenv("LOG_LEVEL") == "" {
		appConfig.Log.Level = "warn"
	}

	if err := logger.InitLogger(appConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(1)
	}
	log := logger.GetLogger()
	defer log.Sync()

	application, err := app.New(appConfig, log, store.Options{})
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer application.Close()

	ctx := context.Background()
	c := console.New(os.Stdin, os.Stdout, application.Inventory, application.Reports, appConfig.Storage.ExportDir, log)

	if err := application.Start(ctx, c.ConfirmDiscard); err != nil {
		fmt.Fprintln(os.Stderr, "Cannot start:", err)
		os.Exit(1)
	}

	err = c.Run(ctx)
	if saveErr := application.Inventory.SaveAll(ctx); saveErr != nil {
		fmt.Fprintln(os.Stderr, "Warning: failed to save data:", saveErr)
	}
	if errors.Is(err, console.ErrTooManyAttempts) {
		os.Exit(1)
	}
	if err != nil {
		log.Error("Console stopped", zap.Error(err))
		os.Exit(1)
	}
}
