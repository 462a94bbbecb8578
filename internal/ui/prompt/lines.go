package prompt

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/gitlink/internal/selection"
	"github.com/raphi011/gitlink/internal/ui/styles"
)

// LinesResult holds the result of a line range prompt.
type LinesResult struct {
	Lines     selection.LineRange
	Cancelled bool
}

type linesModel struct {
	textInput textinput.Model
	prompt    string
	lines     selection.LineRange
	err       error
	done      bool
	cancelled bool
}

func newLinesModel(prompt string) linesModel {
	ti := textinput.New()
	ti.Placeholder = "10-20"
	ti.Focus()
	ti.CharLimit = 32
	ti.SetWidth(20)

	return linesModel{textInput: ti, prompt: prompt}
}

func (m linesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m linesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			lines, err := selection.Parse(strings.TrimSpace(m.textInput.Value()))
			if err != nil {
				m.err = err
				return m, nil
			}
			m.lines = lines
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	m.err = nil
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m linesModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	s := fmt.Sprintf("%s\n%s", styles.TitleStyle.Render(m.prompt), m.textInput.View())
	if m.err != nil {
		s += "\n" + styles.ErrorStyle.Render(m.err.Error())
	} else {
		s += "\n" + styles.MutedStyle.Render("N, N-M or LN-LM • enter confirm • esc cancel")
	}
	return tea.NewView(s)
}

// Lines asks for a 1-based line range on stderr.
// Invalid input is reported inline and the prompt stays open.
func Lines(prompt string) (LinesResult, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newLinesModel(prompt),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return LinesResult{}, err
	}
	m := finalModel.(linesModel)
	if m.cancelled {
		return LinesResult{Cancelled: true}, nil
	}
	return LinesResult{Lines: m.lines}, nil
}
