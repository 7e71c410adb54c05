package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/dwight/internal/config"
	"github.com/sandevgo/dwight/internal/core"
	"github.com/sandevgo/dwight/pkg/log"
)

type Chatter interface {
	Chat(ctx context.Context, input string) (core.Reply, error)
}

type ReadLine struct {
	cfg    *config.AppConfig
	chat   Chatter
	router core.CmdRouter
	rl     *readline.Instance
}

func NewReadLine(cfg *config.AppConfig, chat Chatter, router core.CmdRouter) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dwight> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		chat:   chat,
		router: router,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	ctx = log.WithComponent(ctx, "cli")
	logger := log.FromCtx(ctx)
	logger.Info().Msg("Dwight is listening. Type /help for commands or 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if out, ok := r.router.Execute(ctx, line); ok {
			fmt.Fprintln(r.rl.Stdout(), out)
			continue
		}

		reply, err := r.chat.Chat(ctx, line)
		if err != nil {
			logger.Error().Err(err).Msg("chat failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}
		WriteReply(r.rl.Stdout(), reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// WriteReply prints a reply with its confidence and suggestions.
func WriteReply(w io.Writer, reply core.Reply) {
	fmt.Fprintf(w, "%s\n", reply.Message)

	meta := fmt.Sprintf("confidence %.0f%%", reply.Confidence*100)
	if reply.ContextUsed {
		meta += ", using recent conversation"
	}
	fmt.Fprintf(w, "\033[38;5;240m[%s]\033[0m\n", meta)

	for _, s := range reply.Suggestions {
		fmt.Fprintf(w, "  › %s\n", s)
	}
}
