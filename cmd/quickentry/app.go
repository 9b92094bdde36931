package main

import (
	"context"

	"tasks-timeline/config"
	"tasks-timeline/internal/task"
	"tasks-timeline/internal/task/repository/vault"
	"tasks-timeline/internal/task/usecase"
	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/gcalendar"
	"tasks-timeline/pkg/log"
)

// app builds the task use case from configuration on first use, so that
// commands which do not touch the vault run without a config file.
type app struct {
	configPath *string
}

func (a *app) useCase(ctx context.Context) (task.UseCase, error) {
	var (
		cfg *config.Config
		err error
	)
	if *a.configPath != "" {
		cfg, err = config.LoadFile(*a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	parser, err := datemath.NewParser(cfg.Vault.Timezone)
	if err != nil {
		return nil, err
	}
	repo, err := vault.New(cfg.Vault.Root, parser.Location(), cfg.Cache.Size, logger)
	if err != nil {
		return nil, err
	}

	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available: %v", calErr)
		} else {
			calendar = client
		}
	}

	return usecase.New(logger, repo, calendar, parser, usecase.Config{
		DefaultFile:    cfg.Vault.DefaultFile,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		DaysBefore:     cfg.Timeline.DaysBefore,
		DaysAfter:      cfg.Timeline.DaysAfter,
		ForwardOverdue: cfg.Timeline.ForwardOverdue,
	}), nil
}
