package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"wasd a", runeKey('a'), core.ActionLeft},
		{"wasd d", runeKey('d'), core.ActionRight},
		{"wasd w", runeKey('w'), core.ActionUp},
		{"wasd s", runeKey('s'), core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"vim l", runeKey('l'), core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim j", runeKey('j'), core.ActionDown},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"restart disabled while playing", runeKey('r'), core.ActionNone},
		{"esc disabled while playing", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapSetFinished(t *testing.T) {
	keys := DefaultKeyMap()
	keys.SetFinished(true)

	if got := keys.Action(runeKey('r')); got != core.ActionRestart {
		t.Errorf("r on result screen = %v, want restart", got)
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeyEsc}); got != core.ActionQuit {
		t.Errorf("esc on result screen = %v, want quit", got)
	}

	keys.SetFinished(false)
	if got := keys.Action(runeKey('r')); got != core.ActionNone {
		t.Errorf("r after restart = %v, want none", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		if len(group) > footerHeight {
			t.Errorf("help group %d rows tall does not fit the footer", len(group))
		}
		total += len(group)
	}
	if total != 8 {
		t.Errorf("FullHelp() has %d bindings, want 8", total)
	}
}
