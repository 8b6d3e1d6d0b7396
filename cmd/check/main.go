package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-task-bridge/config"
	"crm-task-bridge/internal/task/repository"
	alloyRepo "crm-task-bridge/internal/task/repository/alloy"
	"crm-task-bridge/pkg/log"
)

// main is a connectivity check for the connector credentials: it loads the
// same config as cmd/api, issues a single upstream list call, and prints the
// outcome. Run it before starting the server to verify the API key and the
// user/credential pair actually work.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Checking connector at %s (%s)...", cfg.Connector.BaseURL, cfg.Connector.APIVersion)

	client := alloyRepo.NewClient(alloyRepo.Config{
		BaseURL:      cfg.Connector.BaseURL,
		APIVersion:   cfg.Connector.APIVersion,
		APIKey:       cfg.Connector.APIKey,
		UserID:       cfg.Connector.UserID,
		CredentialID: cfg.Connector.CredentialID,
		Timeout:      cfg.Connector.Timeout,
	})
	taskRepo := alloyRepo.New(client, logger)

	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tasks, err := taskRepo.ListTasks(callCtx, repository.ListTasksOptions{Limit: 1})
	if err != nil {
		logger.Errorf(ctx, "Connector check failed: %v", err)
		logger.Info(ctx, "Hint: verify CONNECTOR_API_KEY, CONNECTOR_USER_ID and CONNECTOR_CREDENTIAL_ID, and that the Zoho CRM credential is still connected")
		os.Exit(1)
	}

	logger.Infof(ctx, "Connector OK — upstream returned %d task(s)", len(tasks))
}
