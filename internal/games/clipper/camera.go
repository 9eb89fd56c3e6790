package clipper

import (
	"math"

	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// Camera follows the player horizontally with exponential smoothing.
type Camera struct {
	X         float64
	TargetX   float64
	Smoothing float64
}

// targetFor returns the clamped camera position centering centerX.
func targetFor(centerX, viewW, worldW float64) float64 {
	return core.ClampF(centerX-viewW/2, 0, math.Max(0, worldW-viewW))
}

// Follow moves the camera a step toward centering centerX.
func (c *Camera) Follow(centerX, viewW, worldW float64) {
	c.TargetX = targetFor(centerX, viewW, worldW)
	c.X = core.Approach(c.X, c.TargetX, c.Smoothing)
}

// Snap jumps straight to the target.
func (c *Camera) Snap(centerX, viewW, worldW float64) {
	c.TargetX = targetFor(centerX, viewW, worldW)
	c.X = c.TargetX
}

// ParallaxLayer is a background band scrolling at Factor times the camera.
type ParallaxLayer struct {
	Factor float64
	Offset float64
}

func (l *ParallaxLayer) update(cameraX float64) {
	l.Offset = cameraX * l.Factor
}

// Cloud drifts across the sky in view space.
type Cloud struct {
	X, Y  float64
	Speed float64
	Scale float64
}

const cloudWidth = 100

func newCloud(r *rng, viewW float64) Cloud {
	return Cloud{
		X:     r.Float64() * viewW,
		Y:     r.Range(50, 250),
		Speed: r.Range(0.3, 0.8),
		Scale: r.Range(0.5, 1),
	}
}

// update drifts the cloud left, wrapping to the right edge at a new height.
func (c *Cloud) update(r *rng, viewW float64) {
	c.X -= c.Speed * 0.5
	if c.X+cloudWidth < 0 {
		c.X = viewW + cloudWidth
		c.Y = r.Range(50, 250)
	}
}
