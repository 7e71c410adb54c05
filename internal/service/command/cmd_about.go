package command

import (
	"context"

	"github.com/sandevgo/dwight/internal/core"
)

type AboutCommand struct {
	assistant Assistant
	formatter *ResponseFormatter
}

func NewAboutCommand(a Assistant) *AboutCommand {
	return &AboutCommand{
		assistant: a,
		formatter: NewResponseFormatter(),
	}
}

func (c *AboutCommand) Name() string {
	return "about"
}

func (c *AboutCommand) Description() string {
	return "Show who Dwight is"
}

func (c *AboutCommand) Execute(ctx context.Context, args []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info(core.DwightName),
		c.formatter.Label("Version", core.DwightVersion),
		c.formatter.Section("🧠", "Personality", c.formatter.List(c.assistant.Traits())),
	), nil
}
