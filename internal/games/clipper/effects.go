package clipper

import (
	"math"

	"github.com/vovakirdan/clipper-arcade/internal/config"
)

// Effects holds screen shake and the red hit flash.
type Effects struct {
	Shake float64
	Flash float64 // 0..1
}

func (e *Effects) update(cfg config.EffectsConfig) {
	if e.Shake > 0 {
		e.Shake *= cfg.ShakeDecay
	}
	if e.Shake < cfg.ShakeCutoff {
		e.Shake = 0
	}
	if e.Flash > 0 {
		e.Flash = math.Max(0, e.Flash-cfg.FlashDecay)
	}
}

// kick raises shake to at least amount.
func (e *Effects) kick(amount float64) {
	e.Shake = math.Max(e.Shake, amount)
}

// Offset returns the shake displacement for a tick. It is a deterministic
// wobble so rendering never consumes simulation randomness.
func (e Effects) Offset(tick int) (float64, float64) {
	if e.Shake == 0 {
		return 0, 0
	}
	t := float64(tick)
	return e.Shake * math.Sin(t*1.7), e.Shake * math.Cos(t*2.3)
}
