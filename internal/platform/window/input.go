package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// keyState abstracts the keyboard so input mapping can be tested.
type keyState interface {
	pressed(k ebiten.Key) bool
	justPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	runKeys   = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyX}
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	pauseKeys = []ebiten.Key{ebiten.KeyP}
)

// readInput builds one tick's frame: movement keys while held, jump and
// pause only on the tick they go down.
func readInput(ks keyState) core.InputFrame {
	frame := core.NewInputFrame()

	if anyKey(ks.pressed, leftKeys) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(ks.pressed, rightKeys) {
		frame.Set(core.ActionRight)
	}
	if anyKey(ks.pressed, runKeys) {
		frame.Set(core.ActionRun)
	}
	if anyKey(ks.justPressed, jumpKeys) {
		frame.Set(core.ActionJump)
	}
	if anyKey(ks.justPressed, pauseKeys) {
		frame.Set(core.ActionPause)
	}
	return frame
}

func anyKey(f func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}
