package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"notes-api/internal/config"
	"notes-api/internal/logger"
	"notes-api/internal/server"
)

const (
	serviceName       = "notes-api"
	defaultConfigFile = "config.yml"
)

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = defaultConfigFile
	}

	// Загружаем конфигурацию из файла
	appConfig, err := config.Load(configFile)
	if err != nil {
		logger.New(serviceName, "info", "json").WithError(err).Fatal("Error initializing config")
	}

	log := logger.New(serviceName, appConfig.Logger.Level, appConfig.Logger.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(appConfig, log)
	if err := srv.Initialize(ctx); err != nil {
		log.WithError(err).Fatal("Failed to initialize server")
	}

	errChan := srv.Start()

	// Ожидание сигнала или ошибки
	select {
	case err := <-errChan:
		srv.Shutdown()
		log.WithError(err).Fatal("Server error")
	case <-ctx.Done():
		log.Info("Received shutdown signal")
	}

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Warn("Server stopped with error")
	}

	log.Info("Notes API stopped")
}
