package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/taberna-labs/daybook/internal/config"
	"github.com/taberna-labs/daybook/internal/database"
	"github.com/taberna-labs/daybook/internal/entity"
	entityStore "github.com/taberna-labs/daybook/internal/entity/store"
	daybookHttp "github.com/taberna-labs/daybook/internal/http"
	importsHandler "github.com/taberna-labs/daybook/internal/http/imports"
	"github.com/taberna-labs/daybook/internal/importer"
	"github.com/taberna-labs/daybook/internal/upload"
	uploadStore "github.com/taberna-labs/daybook/internal/upload/store"
	voucherStore "github.com/taberna-labs/daybook/internal/voucher/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		uploadService = upload.NewService(uploadStore.New(db))
		resolver      = entity.NewResolver(entityStore.New())
		importService = importer.NewService(
			voucherStore.New(db),
			resolver,
			uploadService,
			importer.Config{
				BatchSize: cfg.Import.BatchSize,
				AuditDir:  cfg.Import.AuditDir,
				Strict:    cfg.Import.Strict,
			},
			logger,
		)
	)

	importsH := importsHandler.NewHandler(uploadService, importService)
	router := daybookHttp.New(importsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
