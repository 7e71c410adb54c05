package command

import (
	"context"
	"fmt"
	"time"
)

type RecordsCommand struct {
	assistant Assistant
	formatter *ResponseFormatter
}

func NewRecordsCommand(a Assistant) *RecordsCommand {
	return &RecordsCommand{
		assistant: a,
		formatter: NewResponseFormatter(),
	}
}

func (c *RecordsCommand) Name() string {
	return "records"
}

func (c *RecordsCommand) Description() string {
	return "List saved recordings"
}

func (c *RecordsCommand) Execute(ctx context.Context, args []string) (string, error) {
	records, err := c.assistant.Recordings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load recordings: %w", err)
	}

	if len(records) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Recordings"),
			"No recordings yet.\n",
			c.formatter.Tip("analyze a file with `/analyze <path>` to save it"),
		), nil
	}

	items := make([]string, 0, len(records))
	for _, rec := range records {
		items = append(items, fmt.Sprintf("#%d **%s** (%s) %s",
			rec.ID, rec.Title, c.formatter.Duration(rec.Duration), rec.CreatedAt.Local().Format(time.DateTime)))
	}
	return c.formatter.Combine(
		c.formatter.Info("Recordings"),
		c.formatter.List(items),
	), nil
}
