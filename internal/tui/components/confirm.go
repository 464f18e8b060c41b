package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Confirm is a yes/no prompt component.
type Confirm struct {
	question  string
	detail    string
	confirmed bool
	answered  bool
	keyMap    confirmKeyMap
	styles    confirmStyles
}

type confirmKeyMap struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

type confirmStyles struct {
	Question lipgloss.Style
	Detail   lipgloss.Style
	Help     lipgloss.Style
}

func defaultConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y/enter", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

func defaultConfirmStyles() confirmStyles {
	return confirmStyles{
		Question: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginLeft(2),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

// NewConfirm creates a confirm prompt. The optional detail lines are
// rendered dimmed under the question.
func NewConfirm(question string, detail ...string) Confirm {
	return Confirm{
		question: question,
		detail:   strings.Join(detail, "\n"),
		keyMap:   defaultConfirmKeyMap(),
		styles:   defaultConfirmStyles(),
	}
}

// Init implements tea.Model.
func (c Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, c.keyMap.Yes):
			c.confirmed = true
			c.answered = true
			return c, tea.Quit
		case key.Matches(msg, c.keyMap.No), key.Matches(msg, c.keyMap.Quit):
			c.answered = true
			return c, tea.Quit
		}
	}
	return c, nil
}

// View implements tea.Model.
func (c Confirm) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Question.Render(c.question))
	b.WriteString("\n")
	if c.detail != "" {
		b.WriteString(c.styles.Detail.Render(c.detail))
		b.WriteString("\n")
	}
	b.WriteString(c.styles.Help.Render("y confirm • n cancel"))
	b.WriteString("\n")

	return b.String()
}

// Confirmed returns true if the user answered yes.
func (c Confirm) Confirmed() bool {
	return c.answered && c.confirmed
}
