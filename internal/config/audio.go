package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/dwight/pkg/log"
)

type AudioConfig struct {
	// Decoded clips are truncated to this many samples, 0 means no limit
	MaxSamples int `env:"DWIGHT_AUDIO_MAX_SAMPLES" envDefault:"0"`
	// Decoded clips are resampled to this rate before analysis, 0 keeps the source rate
	SampleRate int `env:"DWIGHT_AUDIO_SAMPLE_RATE" envDefault:"0"`
}

func NewAudioConfig(ctx context.Context) *AudioConfig {
	c := &AudioConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Audio config")
	}
	return c
}

func (c AudioConfig) GetMaxSamples() int {
	return c.MaxSamples
}

func (c AudioConfig) GetSampleRate() int {
	return c.SampleRate
}
