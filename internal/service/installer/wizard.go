package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrInterrupted = errors.New("dwight installation interrupted")

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step is one screen of the wizard. Update returns nil once the step is done.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

// nextMsg lets a step finish without user input.
type nextMsg struct{}

func defaultSteps() []Step {
	return []Step{
		NewChannelStep(),
		NewTelegramTokenStep(),
		NewTelegramOwnerStep(),
		NewContextWindowStep(),
		NewFinalizationStep(),
		NewSaveEnvStep(),
	}
}

type wizard struct {
	steps    []Step
	current  int
	state    *InstallState
	quitting bool
	width    int
	height   int
}

func newWizard(steps []Step) wizard {
	return wizard{
		steps: steps,
		state: NewInstallState(),
	}
}

func (w wizard) done() bool {
	return w.current >= len(w.steps)
}

func (w wizard) Init() tea.Cmd {
	if w.done() {
		return tea.Quit
	}
	return w.steps[0].Init()
}

func (w wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			w.quitting = true
			return w, tea.Quit
		}
	}

	if w.done() {
		return w, tea.Quit
	}

	next, cmd := w.steps[w.current].Update(msg, w.state, w.width, w.height)
	if next != nil {
		w.steps[w.current] = next
		return w, cmd
	}

	w.current++
	if w.done() {
		return w, tea.Quit
	}
	return w, w.steps[w.current].Init()
}

func (w wizard) View() string {
	if w.quitting {
		return "Installation cancelled.\n"
	}
	if w.done() {
		return "Configuration complete!\n"
	}

	header := titleStyle.Render("Setting up Dwight 🎧") + " " +
		hintStyle.Render(fmt.Sprintf("step %d of %d", w.current+1, len(w.steps)))
	return header + "\n\n" + w.steps[w.current].View(w.state)
}

// RunWizard runs the interactive setup and returns the collected state.
func RunWizard() (*InstallState, error) {
	m, err := tea.NewProgram(newWizard(defaultSteps()), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	w := m.(wizard)
	if w.quitting || !w.done() {
		return nil, ErrInterrupted
	}
	return w.state, nil
}
