package debugger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// terminal is where debugger output is written and where the prompt is shown
type terminal interface {
	io.Writer
	prompt(s string)
}

// plainTerminal writes to an io.Writer. normally stdout
type plainTerminal struct {
	io.Writer
	styles styles
}

func (t plainTerminal) prompt(s string) {
	fmt.Fprint(t.Writer, t.styles.prompt.Render(fmt.Sprintf("%s>", s)), " ")
}

type outputMsg string
type promptMsg string

// teaTerminal forwards output and prompt changes to the bubbletea program
type teaTerminal struct {
	p *tea.Program
}

func (t teaTerminal) Write(b []byte) (int, error) {
	t.p.Send(outputMsg(b))
	return len(b), nil
}

func (t teaTerminal) prompt(s string) {
	t.p.Send(promptMsg(s))
}

// maximum number of lines kept by the viewport
const maxOutputLen = 1000

type model struct {
	viewport viewport.Model
	input    textinput.Model
	output   []string

	// output that does not yet end with a newline
	partial string

	// commands are sent to the debugger over the submit channel. the sig
	// channel interrupts a running emulation or quits the debugger if the
	// emulation is not running
	submit chan input
	sig    chan os.Signal

	styles styles
}

func newModel(submit chan input, sig chan os.Signal, styles styles) *model {
	m := &model{
		submit: submit,
		sig:    sig,
		styles: styles,
	}

	m.input = textinput.New()
	m.input.Placeholder = ""
	m.input.Focus()
	m.input.CharLimit = 256
	m.input.Width = 50

	m.viewport = viewport.New(80, 20)

	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) appendOutput(s string) {
	lines := strings.Split(m.partial+s, "\n")
	m.partial = lines[len(lines)-1]
	m.output = append(m.output, lines[:len(lines)-1]...)
	if len(m.output) > maxOutputLen {
		m.output = m.output[len(m.output)-maxOutputLen:]
	}
	m.viewport.SetContent(strings.Join(m.output, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.viewport.GotoBottom()
		return m, nil

	case outputMsg:
		m.appendOutput(string(msg))
		return m, nil

	case promptMsg:
		m.input.Prompt = m.styles.prompt.Render(fmt.Sprintf("%s>", msg)) + " "
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			select {
			case m.sig <- os.Interrupt:
			default:
			}
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case "enter":
			s := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			m.appendOutput(fmt.Sprintf("%s%s\n", m.input.Prompt, s))
			select {
			case m.submit <- input{s: s}:
			default:
				m.appendOutput(m.styles.err.Render("emulation is running. press ESC to stop") + "\n")
			}
			return m, nil
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	return fmt.Sprintf("%s\n%s",
		m.viewport.View(),
		m.input.View(),
	)
}
