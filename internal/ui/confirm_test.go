package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func confirmKey(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		confirmed bool
		answered  bool
		cancelled bool
		wantCmd   bool
	}{
		{"y confirms", "y", true, true, false, true},
		{"Y confirms", "Y", true, true, false, true},
		{"n declines", "n", false, true, false, true},
		{"N declines", "N", false, true, false, true},
		{"enter defaults no", "enter", false, true, false, true},
		{"ctrl+c cancels", "ctrl+c", false, true, true, true},
		{"esc cancels", "esc", false, true, true, true},
		{"q cancels", "q", false, true, true, true},
		{"unhandled is no-op", "x", false, false, false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := confirmModel{question: "Continue?"}
			updated, cmd := m.Update(confirmKey(tt.key))
			um := updated.(confirmModel)

			if um.confirmed != tt.confirmed {
				t.Errorf("confirmed = %v, want %v", um.confirmed, tt.confirmed)
			}
			if um.answered != tt.answered {
				t.Errorf("answered = %v, want %v", um.answered, tt.answered)
			}
			if um.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", um.cancelled, tt.cancelled)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd nil = %v, want nil = %v", cmd == nil, !tt.wantCmd)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	t.Parallel()

	m := confirmModel{question: "Remove all hooks?"}
	if !strings.Contains(m.View(), "Remove all hooks?") {
		t.Errorf("View() = %q, want the question shown", m.View())
	}

	m.answered = true
	if m.View() != "" {
		t.Error("View() should be empty once answered")
	}
}

func TestConfirmModel_Init(t *testing.T) {
	t.Parallel()

	if (confirmModel{}).Init() != nil {
		t.Error("Init() should return nil cmd")
	}
}
