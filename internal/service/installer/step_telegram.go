package installer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func skip() tea.Msg { return nextMsg{} }

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = limit
	ti.Width = 40
	ti.Placeholder = placeholder
	return ti
}

// TelegramTokenStep asks for the bot token from @BotFather. Skipped unless Telegram was chosen.
type TelegramTokenStep struct {
	input textinput.Model
}

func NewTelegramTokenStep() Step {
	ti := newInput("123456789:ABCDEF...", 255)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return &TelegramTokenStep{input: ti}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, skip)
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !state.wantsTelegram() {
		return nil, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		if token := strings.TrimSpace(s.input.Value()); token != "" {
			state.Env.TelegramToken = token
			return nil, nil
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	return "Telegram bot token (from @BotFather):\n\n" +
		s.input.View() + "\n\n" +
		hintStyle.Render("enter confirm • ctrl+c quit") + "\n"
}

// TelegramOwnerStep asks for the only Telegram user id the bot will answer.
type TelegramOwnerStep struct {
	input   textinput.Model
	invalid bool
}

func NewTelegramOwnerStep() Step {
	return &TelegramOwnerStep{input: newInput("123456789", 32)}
}

func (s *TelegramOwnerStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, skip)
}

func (s *TelegramOwnerStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !state.wantsTelegram() {
		return nil, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		value := strings.TrimSpace(s.input.Value())
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			s.invalid = true
			return s, nil
		}
		state.Env.TelegramOwnerID = value
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TelegramOwnerStep) View(state *InstallState) string {
	view := "Your Telegram user id (messages from anyone else are ignored):\n\n" +
		s.input.View() + "\n\n"
	if s.invalid {
		view += errorStyle.Render("The user id must be a number") + "\n\n"
	}
	return view + hintStyle.Render("enter confirm • ctrl+c quit") + "\n"
}
