package installer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultContextWindow = 10

// ContextWindowStep asks how many past exchanges Dwight should remember per reply
type ContextWindowStep struct {
	input textinput.Model
	err   bool
}

func NewContextWindowStep() Step {
	ti := newInput(strconv.Itoa(defaultContextWindow), 4)
	ti.Width = 10
	return &ContextWindowStep{input: ti}
}

func (s *ContextWindowStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *ContextWindowStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		n, ok := parseWindow(s.input.Value())
		if !ok {
			s.err = true
			return s, nil
		}
		state.Env.ContextWindowSize = n
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ContextWindowStep) View(state *InstallState) string {
	view := "How many past exchanges should Dwight keep in mind?\n\n" +
		s.input.View() + "\n\n"
	if s.err {
		view += errorStyle.Render("Please enter a positive number") + "\n\n"
	}
	return view + hintStyle.Render("enter accept • empty keeps the default") + "\n"
}

// parseWindow accepts an empty value as the default.
func parseWindow(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultContextWindow, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
