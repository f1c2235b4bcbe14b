package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	positionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// PickResult contains the outcome of an interactive pick.
type PickResult struct {
	Path      string
	Position  int // 1-based position in the hook list
	Cancelled bool
}

// pathSource implements fuzzy.Source over the hooked paths.
type pathSource []string

func (s pathSource) String(i int) string { return s[i] }
func (s pathSource) Len() int            { return len(s) }

// pickerModel is the bubbletea model for hook selection.
type pickerModel struct {
	paths     []string
	filtered  []fuzzy.Match
	textInput textinput.Model
	cursor    int
	selected  int // index into paths, -1 if none
	cancelled bool
	maxHeight int
}

func newPickerModel(paths []string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle
	ti.TextStyle = lipgloss.NewStyle()

	m := pickerModel{
		paths:     paths,
		textInput: ti,
		cursor:    0,
		selected:  -1,
		maxHeight: 10,
	}
	m.filtered = m.filterPaths("")
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor].Index
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = m.filterPaths(m.textInput.Value())

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filterPaths ranks paths against query. An empty query keeps the hook
// list order; otherwise matches are ordered by fuzzy score.
func (m pickerModel) filterPaths(query string) []fuzzy.Match {
	if query == "" {
		all := make([]fuzzy.Match, len(m.paths))
		for i, p := range m.paths {
			all[i] = fuzzy.Match{Str: p, Index: i}
		}
		return all
	}
	return fuzzy.FindFrom(query, pathSource(m.paths))
}

func (m pickerModel) View() string {
	var sb strings.Builder

	sb.WriteString("Select hook:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			// keep the cursor centered in the visible window
			halfHeight := m.maxHeight / 2
			start = m.cursor - halfHeight
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			match := m.filtered[i]
			line := fmt.Sprintf("%s %s",
				positionStyle.Render(fmt.Sprintf("[%d]", match.Index+1)),
				match.Str)

			if i == m.cursor {
				sb.WriteString(cursorStyle.Render("> "))
				sb.WriteString(selectedStyle.Render(line))
			} else {
				sb.WriteString("  ")
				sb.WriteString(unselectedStyle.Render(line))
			}
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return sb.String()
}

// RunPicker shows an interactive fuzzy search picker over the hooked
// paths. Returns a cancelled result if the list is empty or the user
// backs out.
func RunPicker(paths []string) (*PickResult, error) {
	if len(paths) == 0 {
		return &PickResult{Cancelled: true}, nil
	}

	model := newPickerModel(paths)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(pickerModel)
	if m.cancelled || m.selected < 0 {
		return &PickResult{Cancelled: true}, nil
	}
	return &PickResult{
		Path:     m.paths[m.selected],
		Position: m.selected + 1,
	}, nil
}
