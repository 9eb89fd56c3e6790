package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clipper-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		run    bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", keyRunes("a"), core.ActionLeft, false},
		{"shift left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionLeft, true},
		{"D", keyRunes("D"), core.ActionRight, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"x", keyRunes("x"), core.ActionRun, false},
		{"space", keyRunes(" "), core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", keyRunes("w"), core.ActionJump, false},
		{"p", keyRunes("p"), core.ActionPause, false},
		{"r", keyRunes("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", keyRunes("q"), core.ActionQuit, false},
		{"z", keyRunes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.MapKey(tc.msg)
			if got.Action != tc.action {
				t.Errorf("action = %v, expected %v", got.Action, tc.action)
			}
			if got.Run != tc.run {
				t.Errorf("run = %v, expected %v", got.Run, tc.run)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{keyRunes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{keyRunes("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHeldKeys(t *testing.T) {
	var h HeldKeys

	h.Press(core.ActionLeft)
	if !h.Held(core.ActionLeft) {
		t.Fatal("left should be held after a press")
	}

	// Repeats arriving inside the hold keep it alive
	for j := 0; j < firstHold-1; j++ {
		h.Tick()
	}
	h.Press(core.ActionLeft)
	for j := 0; j < repeatHold-1; j++ {
		h.Tick()
	}
	if !h.Held(core.ActionLeft) {
		t.Error("repeat should extend the hold")
	}
	h.Tick()
	if h.Held(core.ActionLeft) {
		t.Error("hold should expire after the repeat window")
	}

	// Reversal cancels the opposite direction at once
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)
	if h.Held(core.ActionLeft) || !h.Held(core.ActionRight) {
		t.Error("pressing right should release left")
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.Has(core.ActionRight) || frame.Has(core.ActionLeft) {
		t.Errorf("Apply set %v", frame.Actions)
	}

	h.Release()
	if h.Held(core.ActionRight) {
		t.Error("Release should drop every hold")
	}

	h.Press(core.ActionNone)
	h.Press(core.Action(99))
	if h.Held(core.Action(99)) {
		t.Error("out of range actions are ignored")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60, "0:01"},
		{3600, "1:00"},
		{3600 + 45*60, "1:45"},
	}
	for _, tc := range tests {
		if got := FormatTicks(tc.ticks, 60); got != tc.want {
			t.Errorf("FormatTicks(%d) = %q, expected %q", tc.ticks, got, tc.want)
		}
	}
}
