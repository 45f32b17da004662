package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgomes/mimir/mimir"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type exploreEntry struct {
	input  string
	tokens []mimir.Token
	note   string
	isErr  bool
}

type exploreModel struct {
	textInput   textinput.Model
	scanner     *mimir.Scanner
	printer     tokenPrinter
	history     []exploreEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "scan"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newExploreModel() exploreModel {
	ti := textinput.New()
	ti.Placeholder = "type an expression..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "mimir> "

	return exploreModel{
		textInput:  ti,
		scanner:    mimir.NewScanner(""),
		printer:    newStyledPrinter(lipgloss.DefaultRenderer()),
		history:    make([]exploreEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]exploreEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			m.history = append(m.history, exploreEntry{
				input:  input,
				tokens: m.scan(input),
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m exploreModel) handleCommand(input string) (exploreModel, tea.Cmd) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]exploreEntry, 0)
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, exploreEntry{
			input: input,
			note:  fmt.Sprintf("Unknown command: %s", cmd),
			isErr: true,
		})
	}
	return m, nil
}

// scan reuses the model's scanner for every line, including the
// trailing EndOfFile token.
func (m exploreModel) scan(input string) []mimir.Token {
	m.scanner.Reset(input)
	tokens := make([]mimir.Token, 0)
	for {
		tok := m.scanner.ScanToken()
		tokens = append(tokens, tok)
		if tok.Type == mimir.TokenEOF {
			return tokens
		}
	}
}

func (m exploreModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Mimir token explorer")
	b.WriteString(header + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 8
	}
	// each entry takes three lines
	availableEntries := max((m.height-reservedLines)/3, 1)

	historyStart := 0
	if len(m.history) > availableEntries {
		historyStart = len(m.history) - availableEntries
	}

	for _, entry := range m.history[historyStart:] {
		b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.note) + "\n")
		} else {
			b.WriteString("  " + m.renderTokens(entry.tokens) + "\n")
		}
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func (m exploreModel) renderTokens(tokens []mimir.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = m.printer.renderCompact(tok)
	}
	return strings.Join(parts, " ")
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate input history"},
		{"Enter", "Scan the input line"},
		{":help", "Toggle this help"},
		{":clear", "Clear history"},
		{":quit", "Exit explorer"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runExplorer() error {
	p := tea.NewProgram(newExploreModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
