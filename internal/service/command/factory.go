package command

import (
	"context"

	"github.com/sandevgo/dwight/internal/core"
)

// Assistant is the subset of the assistant service the commands rely on.
type Assistant interface {
	AnalyzeFile(ctx context.Context, path string) (core.FileAnalysis, error)
	Transcribe(ctx context.Context, path string) (string, error)
	SaveRecording(ctx context.Context, record core.AudioRecord) (int64, error)
	Recordings(ctx context.Context) ([]core.AudioRecord, error)
	AddTrigger(ctx context.Context, triggerType, value string) (int64, error)
	ActiveTriggers(ctx context.Context) ([]core.SoundTrigger, error)
	Traits() []string
}

func NewCommands(a Assistant) []core.Command {
	return []core.Command{
		NewAboutCommand(a),
		NewTriggersCommand(a),
		NewRecordsCommand(a),
		NewAnalyzeCommand(a),
		NewTranscribeCommand(a),
	}
}

// NewRouter wires the default commands plus /help, which needs the router itself.
func NewRouter(a Assistant) *Router {
	r := New(NewCommands(a))
	help := NewHelpCommand(r)
	r.commands[help.Name()] = help
	return r
}
