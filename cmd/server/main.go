package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ristcon.api/configs"
	"ristcon.api/configs/configsdatabase"
	"ristcon.api/configs/configslog"
	"ristcon.api/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Configuration could not be loaded", zap.Error(err))
	}

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	app := fiber.New(configs.FiberConfig())
	routes.SetupRoutes(app, configsdatabase.GetDB(), cfg)

	go func() {
		addr := ":" + cfg.Port
		configslog.SLog.Infof("HTTP server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			configslog.Log.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		configslog.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
