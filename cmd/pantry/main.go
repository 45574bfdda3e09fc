package main

import (
	"log"
	"log/slog"

	"github.com/vbonduro/pantry/internal/catalog"
	"github.com/vbonduro/pantry/internal/config"
	"github.com/vbonduro/pantry/internal/db"
	"github.com/vbonduro/pantry/internal/logging"
	"github.com/vbonduro/pantry/internal/scanner"
	"github.com/vbonduro/pantry/internal/scanner/mock"
	"github.com/vbonduro/pantry/internal/scanner/text"
	"github.com/vbonduro/pantry/internal/service"
	"github.com/vbonduro/pantry/internal/store"
	"github.com/vbonduro/pantry/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	recipes, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load recipe catalog", "path", cfg.CatalogPath, "error", err)
		return
	}
	logger.Info("recipe catalog loaded", "recipes", len(recipes))

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	itemStore := store.NewItemStore(database)
	receiptScanner := newReceiptScanner(cfg, logger)

	pantryService := service.NewPantryService(itemStore, receiptScanner, recipes, logger)
	server := web.NewServer(pantryService, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newReceiptScanner(cfg *config.Config, logger *slog.Logger) scanner.ReceiptScanner {
	switch cfg.ScannerBackend {
	case "text":
		logger.Info("using text receipt scanner", "format", scanner.ReceiptFormat)
		return text.NewTextScanner()
	default:
		logger.Info("using mock receipt scanner", "delay", cfg.ScanDelay)
		return mock.NewMockScanner(cfg.ScanDelay)
	}
}
