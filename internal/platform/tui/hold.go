package tui

import "github.com/vovakirdan/clipper-arcade/internal/core"

// Terminals report key presses, never releases. A held key shows up as one
// press, a pause of the OS repeat delay, then a stream of repeats. HeldKeys
// turns that stream back into a held state: the first press holds for
// firstHold ticks to bridge the repeat delay, every repeat extends the hold
// by repeatHold ticks, and the key counts as released once the hold runs out.
const (
	firstHold  = 30 // ~500ms at 60 ticks/s
	repeatHold = 6
)

const heldSlots = int(core.ActionPause) + 1

// HeldKeys tracks remaining hold ticks per action.
type HeldKeys struct {
	ticks [heldSlots]int
}

// Press registers a key press for a held action.
func (h *HeldKeys) Press(a core.Action) {
	if int(a) <= 0 || int(a) >= heldSlots {
		return
	}

	// Opposite directions cancel each other so a quick reversal is immediate
	switch a {
	case core.ActionLeft:
		h.ticks[core.ActionRight] = 0
	case core.ActionRight:
		h.ticks[core.ActionLeft] = 0
	}

	if h.ticks[a] > 0 {
		h.ticks[a] = max(h.ticks[a], repeatHold)
		return
	}
	h.ticks[a] = firstHold
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	if int(a) <= 0 || int(a) >= heldSlots {
		return false
	}
	return h.ticks[a] > 0
}

// Apply sets every held action on the frame.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a := range h.ticks {
		if h.ticks[a] > 0 {
			frame.Set(core.Action(a))
		}
	}
}

// Tick consumes one tick of every hold.
func (h *HeldKeys) Tick() {
	for a := range h.ticks {
		if h.ticks[a] > 0 {
			h.ticks[a]--
		}
	}
}

// Release drops every hold.
func (h *HeldKeys) Release() {
	h.ticks = [heldSlots]int{}
}

// isHeldAction reports whether an action is continuous rather than one-shot.
func isHeldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionRun:
		return true
	}
	return false
}
