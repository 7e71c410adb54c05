package command

import (
	"context"
	"strings"
)

type TranscribeCommand struct {
	assistant Assistant
	formatter *ResponseFormatter
}

func NewTranscribeCommand(a Assistant) *TranscribeCommand {
	return &TranscribeCommand{
		assistant: a,
		formatter: NewResponseFormatter(),
	}
}

func (c *TranscribeCommand) Name() string {
	return "transcribe"
}

func (c *TranscribeCommand) Description() string {
	return "Transcribe an audio file"
}

func (c *TranscribeCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Usage("/transcribe <path>"), nil
	}

	text, err := c.assistant.Transcribe(ctx, strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return c.formatter.Combine(
		c.formatter.Info("Transcript"),
		text,
	), nil
}
