package picker

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gitlink/internal/ui/styles"
)

// ErrNoFiles is returned when there is nothing to pick from.
var ErrNoFiles = errors.New("no files to pick from")

const defaultVisible = 10

// Result holds the outcome of a picker run.
type Result struct {
	File      string
	Cancelled bool
}

// fileSource implements fuzzy.Source over file paths.
type fileSource []string

func (s fileSource) String(i int) string { return s[i] }
func (s fileSource) Len() int            { return len(s) }

type model struct {
	title     string
	input     textinput.Model
	files     []string
	matches   []fuzzy.Match
	cursor    int
	visible   int
	selected  string
	done      bool
	cancelled bool
}

func newModel(title string, files []string) model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "> "
	ti.Focus()
	ti.SetWidth(60)

	m := model{
		title:   title,
		input:   ti,
		files:   files,
		visible: defaultVisible,
	}
	m.applyFilter()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, input, blank line, help and two scroll markers
		m.visible = max(1, min(defaultVisible, msg.Height-6))
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			if len(m.matches) == 0 {
				return m, nil
			}
			m.selected = m.files[m.matches[m.cursor].Index]
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// applyFilter re-ranks the files against the current input and resets the cursor.
func (m *model) applyFilter() {
	m.cursor = 0
	pattern := strings.TrimSpace(m.input.Value())
	if pattern == "" {
		m.matches = make([]fuzzy.Match, len(m.files))
		for i, f := range m.files {
			m.matches[i] = fuzzy.Match{Str: f, Index: i}
		}
		return
	}
	m.matches = fuzzy.FindFrom(pattern, fileSource(m.files))
}

func (m model) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	start := 0
	if m.cursor >= m.visible {
		start = m.cursor - m.visible + 1
	}
	end := min(start+m.visible, len(m.matches))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.matches[i]
		prefix := "  "
		if i == m.cursor {
			prefix = styles.AccentStyle.Render("> ")
		}
		b.WriteString(prefix + highlight(match.Str, match.MatchedIndexes, i == m.cursor) + "\n")
	}
	if end < len(m.matches) {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  ↓ %d more", len(m.matches)-end)) + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching files") + "\n")
	}

	b.WriteString(styles.MutedStyle.Render("↑/↓ select • type to filter • enter confirm • esc cancel"))
	return tea.NewView(b.String())
}

// highlight renders label with matched characters emphasized.
// fuzzy reports byte offsets, so the label is walked by byte index.
func highlight(label string, matched []int, selected bool) string {
	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}
	if len(matched) == 0 {
		return base.Render(label)
	}

	set := make(map[int]bool, len(matched))
	for _, idx := range matched {
		set[idx] = true
	}

	var b strings.Builder
	for i, r := range label {
		if set[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Run shows the picker on stderr and returns the chosen file.
func Run(title string, files []string) (Result, error) {
	if len(files) == 0 {
		return Result{}, ErrNoFiles
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newModel(title, files),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m := finalModel.(model)
	if m.cancelled || m.selected == "" {
		return Result{Cancelled: true}, nil
	}
	return Result{File: m.selected}, nil
}
