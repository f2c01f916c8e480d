package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/adapters/driven/config/crec"
	"github.com/kuradex-labs/kuradex/internal/adapters/driven/config/file"
	"github.com/kuradex-labs/kuradex/internal/adapters/driven/storage/memory"
	"github.com/kuradex-labs/kuradex/internal/adapters/driving/rest"
	"github.com/kuradex-labs/kuradex/internal/catalog"
	"github.com/kuradex-labs/kuradex/internal/core/services"
	"github.com/kuradex-labs/kuradex/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Index the project and serve the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if projectPath == "" {
		return errors.New("--project is required")
	}

	cfg, err := file.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	settings, err := crec.LoadProject(projectPath, log)
	if err != nil {
		return err
	}
	log.Info("project loaded",
		zap.String("project", settings.ProjectName),
		zap.String("dataRoot", settings.DataRoot))

	store := memory.NewCatalogStore()
	scanner := catalog.NewScanner(settings.DataRoot, log)
	catalogSvc := services.NewCatalogService(scanner, store, settings, log)
	searchSvc := services.NewSearchService(store, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// An empty or missing data root is not fatal at startup: the server
	// comes up with an empty index and a later rebuild can populate it.
	if count, err := catalogSvc.Rebuild(ctx); err != nil {
		log.Warn("initial index build failed, serving empty index", zap.Error(err))
	} else {
		log.Info("initial index built", zap.Int("collections", count))
	}

	server := rest.NewServer(cfg, catalogSvc, searchSvc, log)
	return server.Start(ctx)
}
