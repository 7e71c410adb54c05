package installer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	channelCLI      = "Terminal"
	channelTelegram = "Telegram"
	channelBoth     = "Terminal + Telegram"
)

type channelChoice struct {
	name string
	hint string
}

// ChannelStep picks where Dwight listens.
type ChannelStep struct {
	choices []channelChoice
	cursor  int
}

func NewChannelStep() Step {
	return &ChannelStep{
		choices: []channelChoice{
			{channelCLI, "chat in this terminal with `dwight start`"},
			{channelTelegram, "run headless, talk to a bot from your phone"},
			{channelBoth, "both at once"},
		},
	}
}

func (s *ChannelStep) Init() tea.Cmd {
	return nil
}

func (s *ChannelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		s.cursor = max(s.cursor-1, 0)
	case "down", "j":
		s.cursor = min(s.cursor+1, len(s.choices)-1)
	case "enter":
		state.Channel = s.choices[s.cursor].name
		return nil, nil
	}
	return s, nil
}

func (s *ChannelStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Where should Dwight talk to you?\n\n")
	for i, c := range s.choices {
		if i == s.cursor {
			b.WriteString(selStyle.Render("❯ "+c.name) + " " + hintStyle.Render(c.hint) + "\n")
			continue
		}
		b.WriteString(itemStyle.Render("  "+c.name) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("↑/↓ move • enter select • ctrl+c quit") + "\n")
	return b.String()
}
