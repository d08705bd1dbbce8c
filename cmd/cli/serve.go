package cli

import (
	"FarmToFork-Backend/cmd/config"
	"FarmToFork-Backend/internal/utils"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	loaded, err := utils.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(utils.GetConfig("LOG_MODE"), utils.GetConfig("LOG_FILE"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if !loaded {
		zap.L().Info("serve: config file not found, using defaults", zap.String("path", configPath))
	}

	app, err := config.NewApp()
	if err != nil {
		return eris.Wrap(err, "serve: build app")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		zap.L().Info("serve: shutting down")
		if err := app.Shutdown(); err != nil {
			zap.L().Error("serve: shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + utils.GetConfig("APP_PORT")
	zap.L().Info("serve: listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		return eris.Wrapf(err, "serve: listen on %s", addr)
	}
	return nil
}
