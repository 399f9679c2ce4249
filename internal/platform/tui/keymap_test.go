package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/binocular-breakout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMap_Action(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionReset},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionStats},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMap_HelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()

	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	if n != 7 {
		t.Errorf("FullHelp lists %d bindings, want 7", n)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
}
