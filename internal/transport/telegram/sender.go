package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/sandevgo/dwight/pkg/conv"
	"github.com/sandevgo/dwight/pkg/log"
	"github.com/sandevgo/dwight/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

type sender struct {
	bot     *tele.Bot
	retrier *retry.Retrier
}

func newSender(bot *tele.Bot) *sender {
	cfg := retry.NewDefaultConfig()
	cfg.MaxRetries = 3
	return &sender{
		bot:     bot,
		retrier: retry.NewRetrier(cfg),
	}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if needed.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string, silent bool) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))

	chunks := conv.Chunk(html, conv.TelegramMaxLen)
	for i, chunk := range chunks {
		if chunk == "" {
			continue
		}
		opts := []interface{}{tele.ModeHTML}
		if silent && i == 0 {
			opts = append(opts, tele.Silent)
		}

		err := s.retrier.Do(ctx, func() error {
			_, err := s.bot.Send(to, chunk, opts...)
			return classify(err)
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// classify marks client errors as permanent. Flood control and server errors are retried.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return err
	}
	var tgErr *tele.Error
	if errors.As(err, &tgErr) && tgErr.Code >= 400 && tgErr.Code < 500 {
		return retry.Permanent(err)
	}
	return err
}
