package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/knownkit/known/expr"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	exprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entry struct {
	err    error
	src    string
	result expr.Result
}

type replModel struct {
	input   textinput.Model
	history []entry
}

func newReplModel() *replModel {
	ti := textinput.New()
	ti.Placeholder = "1cw + 2cw"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &replModel{input: ti}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "q":
			// Quits only from an empty prompt; otherwise q is input.
			if m.input.Value() == "" {
				return m, tea.Quit
			}

		case "enter":
			src := strings.TrimSpace(m.input.Value())
			if src != "" {
				res, err := expr.Eval(src)
				m.history = append(m.history, entry{src: src, result: res, err: err})
				m.input.Reset()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("known"))
	b.WriteString(" expression calculator\n\n")

	for _, e := range m.history {
		b.WriteString(exprStyle.Render(e.src))
		b.WriteString("\n")
		if e.err != nil {
			b.WriteString(errorStyle.Render("  error: " + e.err.Error()))
		} else {
			b.WriteString(resultStyle.Render("  = " + e.result.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter evaluate • esc or q (empty prompt) quit"))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newReplModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
