package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/tape/tape"
)

// tapeRadius is how many cells either side of the cursor the tape panel shows.
const tapeRadius = 6

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

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

	cursorCellStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

var replCommands = []string{":clear", ":help", ":input", ":quit", ":tape"}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

// tapeSnapshot is the window of cells around the cursor left by the last run.
type tapeSnapshot struct {
	cursor int
	start  int
	cells  []byte
}

type replModel struct {
	textInput    textinput.Model
	history      []historyEntry
	cmdHistory   []string
	historyIdx   int
	pendingInput []byte
	snapshot     *tapeSnapshot
	width        int
	height       int
	showHelp     bool
	showTape     bool
	quitting     bool
	initialized  bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlT key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous program"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next program"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "execute"),
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
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlT: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle tape"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type a program..."
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "tape> "

	return replModel{
		textInput:  ti,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
		showTape:   true,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlT):
			m.showTape = !m.showTape
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

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
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

			var (
				output string
				isErr  bool
			)
			m, output, isErr = m.evaluate(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
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

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	cmd, rest, _ := strings.Cut(input, " ")

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":tape", ":t":
		m.showTape = !m.showTape
	case ":input", ":i":
		data, err := decodeInput(rest)
		if err != nil {
			m.history = append(m.history, historyEntry{
				input:  input,
				output: err.Error(),
				isErr:  true,
			})
			break
		}
		m.pendingInput = data
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Input buffer holds %d byte(s)", len(data)),
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

// decodeInput accepts either raw text or a Go-quoted string, so escapes like
// "\n" and "\x00" can be fed to the program.
func decodeInput(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid quoted input: %w", err)
		}
		return []byte(unquoted), nil
	}
	return []byte(raw), nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if !strings.HasPrefix(input, ":") || strings.Contains(input, " ") {
		return m
	}

	var completions []string
	for _, c := range replCommands {
		if strings.HasPrefix(c, input) {
			completions = append(completions, c)
		}
	}

	if len(completions) == 1 {
		m.textInput.SetValue(completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			input:  "",
			output: "Completions: " + strings.Join(completions, ", "),
			isErr:  false,
		})
	}

	return m
}

// evaluate runs input on a fresh tape. Bytes consumed by ',' are removed from
// the pending input buffer.
func (m replModel) evaluate(input string) (replModel, string, bool) {
	program, err := tape.Translate(input)
	if err != nil {
		return m, err.Error(), true
	}

	reader := bytes.NewReader(m.pendingInput)
	var out bytes.Buffer
	machine := tape.NewMachine(reader, &out)
	runErr := machine.Run(program)
	m.pendingInput = m.pendingInput[len(m.pendingInput)-reader.Len():]
	m.snapshot = snapshotAround(machine)
	if runErr != nil {
		return m, runErr.Error(), true
	}

	if out.Len() == 0 {
		return m, fmt.Sprintf("(no output, %d steps)", machine.Steps()), false
	}
	return m, strconv.Quote(out.String()), false
}

func snapshotAround(machine *tape.Machine) *tapeSnapshot {
	cursor := machine.Cursor()
	start := cursor - tapeRadius
	return &tapeSnapshot{
		cursor: cursor,
		start:  start,
		cells:  machine.Tape(start, cursor+tapeRadius+1),
	}
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Tape REPL")
	memory := mutedStyle.Render(fmt.Sprintf("%d cells", tape.MemorySize))
	b.WriteString(header + " " + memory + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8 // header, input, help hint, etc.
	if m.showHelp {
		reservedLines += 10
	}
	if m.showTape {
		reservedLines += 5
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}
		b.WriteString("\n")
	}

	if m.showTape {
		b.WriteString(renderTapePanel(m.snapshot, len(m.pendingInput)))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+t") + helpDescStyle.Render(" tape  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderTapePanel(snap *tapeSnapshot, pending int) string {
	if snap == nil {
		return borderStyle.Render(mutedStyle.Render(fmt.Sprintf("No program run yet (%d input byte(s) pending)", pending)))
	}

	var indexes, values []string
	for i, cell := range snap.cells {
		idx := (snap.start + i + tape.MemorySize) % tape.MemorySize
		label := fmt.Sprintf("%5d", idx)
		value := fmt.Sprintf("%5d", cell)
		if idx == snap.cursor {
			label = cursorCellStyle.Render(label)
			value = cursorCellStyle.Render(value)
		}
		indexes = append(indexes, label)
		values = append(values, value)
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render(fmt.Sprintf("Tape (cursor %d, %d input byte(s) pending)", snap.cursor, pending)),
		mutedStyle.Render(strings.Join(indexes, " ")),
		strings.Join(values, " "),
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate program history"},
		{"Tab", "Autocomplete commands"},
		{"Enter", "Run program on a fresh tape"},
		{":input", "Set bytes for ',' (raw or \"quoted\")"},
		{":tape", "Toggle tape panel"},
		{":help", "Toggle this help"},
		{":clear", "Clear history"},
		{":quit", "Exit REPL"},
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

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
