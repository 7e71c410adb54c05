package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/dwight/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"DWIGHT_RUNTIME_PATH" envDefault:".dwight"`

	// Transport Flags
	EnableTelegram bool `env:"DWIGHT_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"DWIGHT_ENABLE_CLI" envDefault:"true"`

	// Number of past exchanges handed to the response engine
	ContextWindowSize int `env:"DWIGHT_CONTEXT_WINDOW_SIZE" envDefault:"10"`
}

const defaultContextWindowSize = 10

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if c.ContextWindowSize < 0 {
		// sqlite reads a negative LIMIT as unbounded
		log.FromCtx(ctx).Warn().Int("value", c.ContextWindowSize).Int("default", defaultContextWindowSize).Msg("negative context window size, using default")
		c.ContextWindowSize = defaultContextWindowSize
	}
	if !filepath.IsAbs(c.RuntimePath) {
		home, _ := os.UserHomeDir()
		c.RuntimePath = filepath.Join(home, c.RuntimePath)
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "dwight.db")
}

func (c AppConfig) GetUploadsPath() string {
	return filepath.Join(c.RuntimePath, "uploads")
}

func (c AppConfig) GetContextWindowSize() int {
	return c.ContextWindowSize
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}
