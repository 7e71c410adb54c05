package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep computes derived values and final env var formatting
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(state)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

func finalize(state *InstallState) {
	state.Env.EnableCLI = "true"
	if state.Channel == channelTelegram {
		state.Env.EnableCLI = "false"
	}

	if state.wantsTelegram() && state.Env.TelegramToken != "" {
		state.Env.EnableTelegram = "true"
	} else {
		state.Env.EnableTelegram = "false"
		state.Env.TelegramToken = ""
		state.Env.TelegramOwnerID = ""
	}

	if state.Env.ContextWindowSize <= 0 {
		state.Env.ContextWindowSize = defaultContextWindow
	}
	if state.Env.Debug == "" {
		state.Env.Debug = "0"
	}
}
