package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/micro-ha/remotectl/internal/config"
	"github.com/micro-ha/remotectl/internal/domain/device"
	"github.com/micro-ha/remotectl/internal/events"
	httpapi "github.com/micro-ha/remotectl/internal/http"
	"github.com/micro-ha/remotectl/internal/http/handlers"
	"github.com/micro-ha/remotectl/internal/invoker"
	"github.com/micro-ha/remotectl/internal/logging"
	"github.com/micro-ha/remotectl/internal/model"
	"github.com/micro-ha/remotectl/internal/service"
	"github.com/micro-ha/remotectl/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if err := os.MkdirAll(cfg.DBDir(), 0o755); err != nil {
		logger.Error("failed to create db directory", "err", err)
		os.Exit(1)
	}

	repo, err := storage.New(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	layout, err := model.LoadLayout(cfg.LayoutPath)
	if err != nil {
		logger.Error("failed to load layout", "path", cfg.LayoutPath, "err", err)
		os.Exit(1)
	}
	if len(layout.Devices) == 0 {
		logger.Warn("layout declares no devices; remote starts empty", "path", cfg.LayoutPath)
	}

	hub := events.NewHub(logger)
	notifier := device.MultiNotifier(device.LogNotifier(logger), hub)

	registry := device.NewRegistry()
	for _, decl := range layout.Devices {
		dev, err := device.Build(device.Kind(decl.Kind), decl.Name, decl.Label, notifier)
		if err != nil {
			logger.Error("failed to build device", "name", decl.Name, "kind", decl.Kind, "err", err)
			os.Exit(1)
		}
		if err := registry.Add(dev); err != nil {
			logger.Error("failed to register device", "name", decl.Name, "err", err)
			os.Exit(1)
		}
	}

	remote := invoker.New(cfg.SlotCount)
	control := service.New(registry, remote, repo, logger)
	if err := control.Restore(ctx, layout); err != nil {
		logger.Error("failed to restore control state", "err", err)
		os.Exit(1)
	}

	api := handlers.New(control, hub, logger)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(api),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server starting", "addr", httpServer.Addr, "slots", cfg.SlotCount)
	if err := httpapi.RunServer(ctx, httpServer); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server terminated with error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
