package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/dwight/internal/core"
	"github.com/sandevgo/dwight/internal/service/audio"
	"github.com/sandevgo/dwight/pkg/audioconv"
	"github.com/sandevgo/dwight/pkg/log"
)

var ErrInvalidTrigger = errors.New("invalid trigger")

const ObservationUndecodable = "Audio could not be decoded - pattern analysis skipped"

type Responder interface {
	Respond(utterance string, history []core.HistoryEntry) core.Reply
	Traits() []string
}

type Assistant struct {
	appCfg   core.AppConfig
	audioCfg core.AudioConfig
	engine   Responder
	memory   core.MemoryRepository
	records  core.AudioRecordRepository
	triggers core.TriggerRepository
}

func NewAssistant(
	appCfg core.AppConfig,
	audioCfg core.AudioConfig,
	engine Responder,
	memory core.MemoryRepository,
	records core.AudioRecordRepository,
	triggers core.TriggerRepository,
) *Assistant {
	return &Assistant{
		appCfg:   appCfg,
		audioCfg: audioCfg,
		engine:   engine,
		memory:   memory,
		records:  records,
		triggers: triggers,
	}
}

// Chat answers the input using recent memory and stores the exchange.
func (a *Assistant) Chat(ctx context.Context, input string) (core.Reply, error) {
	logger := log.FromCtx(ctx)

	history, err := a.memory.FetchRecent(ctx, a.appCfg.GetContextWindowSize())
	if err != nil {
		return core.Reply{}, fmt.Errorf("failed to fetch history: %w", err)
	}

	reply := a.engine.Respond(input, history)

	id, err := a.memory.Append(ctx, core.HistoryEntry{
		UserInput: input,
		Response:  reply.Message,
		Context:   "User asked: " + input,
	})
	if err != nil {
		return core.Reply{}, fmt.Errorf("failed to save memory: %w", err)
	}

	logger.Debug().
		Int64("memory_id", id).
		Float64("confidence", reply.Confidence).
		Bool("context_used", reply.ContextUsed).
		Msg("reply generated")

	return reply, nil
}

var formatNotes = map[string]string{
	".wav": "WAV format detected - high quality uncompressed audio",
	".mp3": "MP3 format detected - compressed audio, may have some quality loss",
}

var readinessNotes = []string{
	"Audio file ready for transcription and pattern analysis",
	"I can detect speech, identify speakers, and find non-verbal sounds",
	"Trigger detection is active for configured sound patterns",
}

// AnalyzeFile decodes an audio file and reports format notes and detected patterns.
func (a *Assistant) AnalyzeFile(ctx context.Context, path string) (core.FileAnalysis, error) {
	logger := log.FromCtx(ctx)

	var notes []string
	if note, ok := formatNotes[strings.ToLower(filepath.Ext(path))]; ok {
		notes = append(notes, note)
	}
	notes = append(notes, readinessNotes...)

	if _, err := os.Stat(path); err != nil {
		return core.FileAnalysis{}, fmt.Errorf("failed to open %s: %w", path, err)
	}

	clip, err := audioconv.DecodeFile(ctx, path, audioconv.Options{
		MaxSamples: a.audioCfg.GetMaxSamples(),
		SampleRate: a.audioCfg.GetSampleRate(),
	})
	if err != nil {
		// the notes do not depend on the audio, so they are still reported
		logger.Warn().Err(err).Str("path", path).Msg("failed to decode audio, skipping pattern detection")
		return core.FileAnalysis{
			Path:         path,
			Format:       audioconv.FormatFromPath(path),
			Notes:        notes,
			Observations: []string{ObservationUndecodable},
		}, nil
	}

	observations, err := audio.DetectPatterns(clip.Samples)
	if err != nil {
		if !errors.Is(err, audio.ErrInvalidInput) {
			return core.FileAnalysis{}, err
		}
		logger.Debug().Str("path", path).Msg("decoded clip is empty, skipping pattern detection")
	}

	logger.Info().
		Str("path", path).
		Str("format", clip.Format).
		Int("samples", len(clip.Samples)).
		Int("observations", len(observations)).
		Msg("audio file analyzed")

	return core.FileAnalysis{
		Path:         path,
		Format:       clip.Format,
		Notes:        notes,
		Observations: observations,
		Duration:     clip.Duration(),
		SampleRate:   clip.SampleRate,
	}, nil
}

// Transcribe stands in for a speech recognizer and echoes the file path.
func (a *Assistant) Transcribe(_ context.Context, path string) (string, error) {
	return fmt.Sprintf("(Mock transcript) Received file: %s", path), nil
}

func (a *Assistant) SaveRecording(ctx context.Context, record core.AudioRecord) (int64, error) {
	if strings.TrimSpace(record.FilePath) == "" {
		return 0, errors.New("recording file path is required")
	}
	if record.Title == "" {
		record.Title = filepath.Base(record.FilePath)
	}
	return a.records.SaveRecord(ctx, record)
}

func (a *Assistant) Recordings(ctx context.Context) ([]core.AudioRecord, error) {
	return a.records.ListRecords(ctx)
}

func (a *Assistant) AddTrigger(ctx context.Context, triggerType, value string) (int64, error) {
	triggerType = strings.ToLower(strings.TrimSpace(triggerType))
	if triggerType != core.TriggerSound && triggerType != core.TriggerSpeech {
		return 0, fmt.Errorf("%w: type must be %q or %q, got %q", ErrInvalidTrigger, core.TriggerSound, core.TriggerSpeech, triggerType)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: value is empty", ErrInvalidTrigger)
	}

	return a.triggers.SaveTrigger(ctx, core.SoundTrigger{
		Type:   triggerType,
		Value:  value,
		Active: true,
	})
}

func (a *Assistant) ActiveTriggers(ctx context.Context) ([]core.SoundTrigger, error) {
	return a.triggers.ActiveTriggers(ctx)
}

func (a *Assistant) Traits() []string {
	return a.engine.Traits()
}
