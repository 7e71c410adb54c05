package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sandevgo/dwight/internal/config"
	"github.com/sandevgo/dwight/internal/core"
	"github.com/sandevgo/dwight/internal/service/command"
	"github.com/sandevgo/dwight/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Assistant is what the bot needs from the assistant service.
type Assistant interface {
	Chat(ctx context.Context, input string) (core.Reply, error)
	AnalyzeFile(ctx context.Context, path string) (core.FileAnalysis, error)
	SaveRecording(ctx context.Context, record core.AudioRecord) (int64, error)
}

type Bot struct {
	bot        *tele.Bot
	sender     *sender
	assistant  Assistant
	router     core.CmdRouter
	uploadsDir string
	ownerID    int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	appCfg *config.AppConfig,
	assistant Assistant,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:        b,
		sender:     newSender(b),
		assistant:  assistant,
		router:     router,
		uploadsDir: appCfg.GetUploadsPath(),
		ownerID:    cfg.OwnerID,
	}

	ctx = log.WithComponent(ctx, "telegram")

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)
	b.Handle(tele.OnAudio, bot.handleAudio)
	b.Handle(tele.OnDocument, bot.handleDocument)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	if out, ok := b.router.Execute(ctx, c.Text()); ok {
		return b.sender.sendMarkdown(ctx, c.Chat(), out, false)
	}

	_ = c.Notify(tele.Typing)

	reply, err := b.assistant.Chat(ctx, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("chat failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), FormatReply(reply), false)
}

func (b *Bot) handleAudio(c tele.Context) error {
	a := c.Message().Audio
	name := a.FileName
	if name == "" {
		name = a.UniqueID + ".mp3"
	}
	return b.analyzeUpload(c, &a.File, name)
}

func (b *Bot) handleDocument(c tele.Context) error {
	d := c.Message().Document
	name := d.FileName
	if name == "" {
		name = d.UniqueID
	}
	return b.analyzeUpload(c, &d.File, name)
}

func (b *Bot) analyzeUpload(c tele.Context, file *tele.File, name string) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	_ = c.Notify(tele.Typing)

	if err := os.MkdirAll(b.uploadsDir, 0755); err != nil {
		return fmt.Errorf("failed to create uploads directory: %w", err)
	}

	path := filepath.Join(b.uploadsDir, fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(name)))
	if err := b.bot.Download(file, path); err != nil {
		logger.Error().Err(err).Str("file", name).Msg("failed to download upload")
		return c.Send(fmt.Sprintf("error: failed to download %s", name))
	}

	res, err := b.assistant.AnalyzeFile(ctx, path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to analyze upload")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	id, err := b.assistant.SaveRecording(ctx, core.AudioRecord{
		Title:    name,
		FilePath: path,
		Duration: res.Duration,
		Triggers: strings.Join(res.Observations, "; "),
	})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to save recording")
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), command.FormatAnalysis(command.NewResponseFormatter(), res, id), false)
}

// FormatReply renders a reply as Markdown with suggestions as a list.
func FormatReply(reply core.Reply) string {
	var sb strings.Builder
	sb.WriteString(reply.Message)
	if len(reply.Suggestions) > 0 {
		sb.WriteString("\n\n**Suggestions**\n")
		for _, s := range reply.Suggestions {
			sb.WriteString("- " + s + "\n")
		}
	}
	return sb.String()
}
