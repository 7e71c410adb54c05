package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sandevgo/dwight/internal/core"
	"github.com/sandevgo/dwight/pkg/log"
)

type AnalyzeCommand struct {
	assistant Assistant
	formatter *ResponseFormatter
}

func NewAnalyzeCommand(a Assistant) *AnalyzeCommand {
	return &AnalyzeCommand{
		assistant: a,
		formatter: NewResponseFormatter(),
	}
}

func (c *AnalyzeCommand) Name() string {
	return "analyze"
}

func (c *AnalyzeCommand) Description() string {
	return "Analyze an audio file and save it as a recording"
}

func (c *AnalyzeCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Usage("/analyze <path>"),
			c.formatter.Examples([]string{"/analyze ~/recordings/garage.wav"}),
		), nil
	}

	path := strings.Join(args, " ")
	res, err := c.assistant.AnalyzeFile(ctx, path)
	if err != nil {
		return "", err
	}

	id, err := c.assistant.SaveRecording(ctx, core.AudioRecord{
		Title:    filepath.Base(path),
		FilePath: path,
		Duration: res.Duration,
		Triggers: strings.Join(res.Observations, "; "),
	})
	if err != nil {
		// the analysis is still worth showing
		log.FromCtx(ctx).Error().Err(err).Str("path", path).Msg("failed to save recording")
	}

	return FormatAnalysis(c.formatter, res, id), nil
}

// FormatAnalysis renders a file analysis. A zero id means the record was not saved.
func FormatAnalysis(f *ResponseFormatter, res core.FileAnalysis, id int64) string {
	sections := []string{
		f.Info("Audio Analysis"),
		f.Label("File", filepath.Base(res.Path)),
		f.Label("Format", res.Format),
	}
	if res.SampleRate > 0 {
		sections = append(sections, f.Label("Duration", fmt.Sprintf("%s @ %d Hz", f.Duration(res.Duration), res.SampleRate)))
	}
	sections = append(sections, f.Section("📝", "Notes", f.List(res.Notes)))

	if len(res.Observations) > 0 {
		sections = append(sections, f.Section("🔊", "Observations", f.List(res.Observations)))
	} else {
		sections = append(sections, f.Section("🔊", "Observations", "Nothing unusual detected.\n"))
	}

	if id > 0 {
		sections = append(sections, f.Success(fmt.Sprintf("Saved as recording #%d", id)))
	}
	return f.Combine(sections...)
}
