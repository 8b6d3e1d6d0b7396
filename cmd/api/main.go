package main

import (
	"context"
	"fmt"

	"crm-task-bridge/config"
	_ "crm-task-bridge/docs" // Swagger docs
	"crm-task-bridge/internal/httpserver"
	alloyRepo "crm-task-bridge/internal/task/repository/alloy"
	"crm-task-bridge/internal/task/usecase"
	"crm-task-bridge/pkg/log"
)

// @title       CRM Task Bridge API
// @description Forwards task CRUD calls from the browser to Zoho CRM via a connector API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting CRM Task Bridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Connector: %s (%s)", cfg.Connector.BaseURL, cfg.Connector.APIVersion)

	// 3. Task domain: connector client → repository → usecase
	client := alloyRepo.NewClient(alloyRepo.Config{
		BaseURL:      cfg.Connector.BaseURL,
		APIVersion:   cfg.Connector.APIVersion,
		APIKey:       cfg.Connector.APIKey,
		UserID:       cfg.Connector.UserID,
		CredentialID: cfg.Connector.CredentialID,
		Timeout:      cfg.Connector.Timeout,
	})
	taskRepo := alloyRepo.New(client, logger)
	taskUC := usecase.New(taskRepo, logger)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		API:         cfg.API,
		TaskUseCase: taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
