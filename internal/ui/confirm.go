package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmResult reports how a yes/no prompt ended.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

// confirmModel asks a single yes/no question. Enter means no: every
// caller guards a destructive action, so the lazy answer is the safe one.
type confirmModel struct {
	question  string
	answered  bool
	confirmed bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "enter":
	case "esc", "q", "ctrl+c":
		m.cancelled = true
	default:
		return m, nil
	}
	m.answered = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	return m.question + " " + dimStyle.Render("[y/N]") + " "
}

// Confirm asks question and waits for a single keypress. Enter defaults
// to no; esc, q and ctrl+c set Cancelled instead of answering.
func Confirm(question string) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{question: question})
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := final.(confirmModel)
	return ConfirmResult{Confirmed: m.confirmed, Cancelled: m.cancelled}, nil
}
