package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/dwight/internal/config"
	"github.com/sandevgo/dwight/internal/service/assistant"
	"github.com/sandevgo/dwight/internal/service/command"
	"github.com/sandevgo/dwight/internal/service/dwight"
	"github.com/sandevgo/dwight/internal/storage/sqlite"
	"github.com/sandevgo/dwight/internal/transport/cli"
	"github.com/sandevgo/dwight/internal/transport/telegram"
	"github.com/sandevgo/dwight/pkg/log"
	"github.com/sandevgo/dwight/pkg/srv"
)

// app holds everything the commands share.
type app struct {
	cfg       *config.AppConfig
	db        *sql.DB
	assistant *assistant.Assistant
	router    *command.Router
}

func newApp(ctx context.Context) (*app, error) {
	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, err
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	audioCfg := config.NewAudioConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, err
	}

	// 3. Assistant
	a := assistant.NewAssistant(
		appCfg,
		audioCfg,
		dwight.NewDefaultEngine(),
		sqlite.NewMemoryRepo(db),
		sqlite.NewRecordsRepo(db),
		sqlite.NewTriggersRepo(db),
	)

	return &app{
		cfg:       appCfg,
		db:        db,
		assistant: a,
		router:    command.NewRouter(a),
	}, nil
}

// NewServices builds the long running services. quit is called when the terminal session ends.
func NewServices(ctx context.Context, quit func()) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	a, err := newApp(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize dwight")
	}
	services = append(services, srv.NewCleanup(a.db.Close))

	transports, err := initTransports(ctx, a, quit)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Warn().Msg("no transports enabled, set DWIGHT_ENABLE_CLI or DWIGHT_ENABLE_TELEGRAM")
	}
	services = append(services, transports...)

	return services
}

func initTransports(ctx context.Context, a *app, quit func()) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if a.cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, a.cfg, a.assistant, a.router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// Terminal
	if a.cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(a.cfg, a.assistant, a.router)
		if err != nil {
			return nil, err
		}
		services = append(services, &quitOnReturn{Service: rl, quit: quit})
	}

	return services, nil
}

// quitOnReturn stops the process once the wrapped service's Start returns.
type quitOnReturn struct {
	srv.Service
	quit func()
}

func (q *quitOnReturn) Start(ctx context.Context) error {
	defer q.quit()
	return q.Service.Start(ctx)
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
