package clipper

import (
	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// PlatformKind only changes how a platform is drawn.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformFloating
)

// String returns the kind name.
func (k PlatformKind) String() string {
	if k == PlatformGround {
		return "ground"
	}
	return "floating"
}

// Platform is a static rectangle bodies can stand on.
type Platform struct {
	X, Y, W, H float64
	Kind       PlatformKind
}

// Box returns the platform bounds.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// buildPlatforms returns the ground strip followed by the level's floating platforms.
func buildPlatforms(cfg config.GameConfig) []Platform {
	plats := make([]Platform, 0, len(cfg.Level.Platforms)+1)
	plats = append(plats, Platform{
		X:    0,
		Y:    cfg.World.GroundY,
		W:    cfg.World.Width,
		H:    cfg.World.ViewHeight - cfg.World.GroundY,
		Kind: PlatformGround,
	})
	for _, d := range cfg.Level.Platforms {
		b := core.NewBox(d.X, d.Y, d.W, d.H)
		plats = append(plats, Platform{X: b.X, Y: b.Y, W: b.W, H: b.H, Kind: PlatformFloating})
	}
	return plats
}

// restingTop finds the surface a descending body lands on this frame.
// The ground catches anything at or below it. A floating platform only
// catches a body whose bottom crossed its top edge during the frame and
// which overlaps it horizontally. The highest candidate wins.
func restingTop(plats []Platform, x, w, prevBottom, bottom float64) (float64, bool) {
	top, found := 0.0, false
	for _, p := range plats {
		var hit bool
		switch p.Kind {
		case PlatformGround:
			hit = bottom >= p.Y
		default:
			hit = prevBottom <= p.Y && bottom >= p.Y && x+w > p.X && x < p.X+p.W
		}
		if hit && (!found || p.Y < top) {
			top, found = p.Y, true
		}
	}
	return top, found
}
