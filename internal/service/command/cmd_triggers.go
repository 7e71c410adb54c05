package command

import (
	"context"
	"fmt"
	"strings"
)

type TriggersCommand struct {
	assistant Assistant
	formatter *ResponseFormatter
}

func NewTriggersCommand(a Assistant) *TriggersCommand {
	return &TriggersCommand{
		assistant: a,
		formatter: NewResponseFormatter(),
	}
}

func (c *TriggersCommand) Name() string {
	return "triggers"
}

func (c *TriggersCommand) Description() string {
	return "List or add sound and speech triggers"
}

func (c *TriggersCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.list(ctx)
	}

	if args[0] != "add" || len(args) < 3 {
		return c.formatter.Combine(
			c.formatter.Usage("/triggers [add <sound|speech> <value>]"),
			c.formatter.Examples([]string{
				"/triggers",
				"/triggers add sound glass break",
				"/triggers add speech open the door",
			}),
		), nil
	}

	value := strings.Join(args[2:], " ")
	id, err := c.assistant.AddTrigger(ctx, args[1], value)
	if err != nil {
		return "", fmt.Errorf("failed to add trigger: %w", err)
	}

	return c.formatter.Success(fmt.Sprintf("Trigger #%d added: %s `%s`", id, strings.ToLower(args[1]), value)), nil
}

func (c *TriggersCommand) list(ctx context.Context) (string, error) {
	triggers, err := c.assistant.ActiveTriggers(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load triggers: %w", err)
	}

	if len(triggers) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Active Triggers"),
			"No active triggers.\n",
			c.formatter.Tip("add one with `/triggers add sound glass break`"),
		), nil
	}

	items := make([]string, 0, len(triggers))
	for _, tr := range triggers {
		items = append(items, fmt.Sprintf("#%d %s `%s`", tr.ID, tr.Type, tr.Value))
	}
	return c.formatter.Combine(
		c.formatter.Info("Active Triggers"),
		c.formatter.List(items),
	), nil
}
