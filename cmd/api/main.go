package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasks-timeline/config"
	_ "tasks-timeline/docs" // Swagger docs
	"tasks-timeline/internal/httpserver"
	taskHTTP "tasks-timeline/internal/task/delivery/http"
	"tasks-timeline/internal/task/repository/vault"
	"tasks-timeline/internal/task/usecase"
	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/gcalendar"
	"tasks-timeline/pkg/log"
)

// @title       Tasks Timeline API
// @description Quick-entry task capture and a date-grouped timeline over a vault of markdown notes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tasks Timeline...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Vault: %s", cfg.Vault.Root)

	// 3. Date parser in the vault timezone
	dateMathParser, err := datemath.NewParser(cfg.Vault.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Vault.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Vault repository
	taskRepo, err := vault.New(cfg.Vault.Root, dateMathParser.Location(), cfg.Cache.Size, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open vault: %v", err)
		os.Exit(1)
	}

	// 5. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate a token")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task UseCase + HTTP delivery
	taskUC := usecase.New(logger, taskRepo, calendar, dateMathParser, usecase.Config{
		DefaultFile:    cfg.Vault.DefaultFile,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		DaysBefore:     cfg.Timeline.DaysBefore,
		DaysAfter:      cfg.Timeline.DaysAfter,
		ForwardOverdue: cfg.Timeline.ForwardOverdue,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.QuickEntry.RateLimitPerMin,
		VaultRoot:       cfg.Vault.Root,
		TaskHandler:     taskHTTP.New(logger, taskUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run until signalled
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
