package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TeaPrompter asks each question with a bubbletea text input, giving line
// editing and a styled prompt on a terminal.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a prompter that runs a short bubbletea program per
// question.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Ask implements Prompter
func (p *TeaPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	program := tea.NewProgram(newPromptModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInputClosed
		}
		return "", err
	}

	m, ok := final.(promptModel)
	if !ok || m.cancelled {
		return "", ErrInputClosed
	}
	return m.value, nil
}

// promptModel is a single-line question.
type promptModel struct {
	input     textinput.Model
	value     string
	done      bool
	cancelled bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = PromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.CharLimit = 64
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		// Leave the answered question on screen.
		return m.input.Prompt + m.value + "\n"
	}
	return m.input.View()
}
