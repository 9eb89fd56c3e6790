package clipper

import (
	"math"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// Enemy is a Lighter. Movers walk left until they leave the world;
// patrollers pace around their spawn point and stand on platforms.
type Enemy struct {
	X, Y     float64
	VY       float64
	W, H     float64
	Speed    float64
	Dir      float64 // -1 left, 1 right
	OriginX  float64
	Behavior string
	OnGround bool

	// Cosmetics
	Phase          float64
	Bob            float64
	Rotation       float64
	Glow           float64
	ScaleX, ScaleY float64
}

// Box returns the collision bounds.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

func newEnemy(cfg config.EnemyConfig, x, y, speed, phase float64) *Enemy {
	return &Enemy{
		X:        x,
		Y:        y,
		W:        math.Max(0, cfg.Width),
		H:        math.Max(0, cfg.Height),
		Speed:    speed,
		Dir:      -1,
		OriginX:  x,
		Behavior: cfg.Behavior,
		OnGround: cfg.Behavior == config.BehaviorMover,
		Phase:    phase,
		ScaleX:   1,
		ScaleY:   1,
	}
}

// update moves the enemy one frame and advances its animation.
func (e *Enemy) update(cfg config.EnemyConfig, player config.PlayerConfig, plats []Platform, worldW float64) {
	e.Phase += 0.15

	if e.Behavior == config.BehaviorPatrol {
		e.patrol(cfg.PatrolRange, worldW)
		e.fall(player.Gravity, player.MaxFallSpeed, plats)
	} else {
		e.X -= e.Speed
	}

	e.Bob = math.Sin(e.Phase*5) * 8
	e.Rotation = math.Sin(e.Phase*3) * 0.1
	e.Glow = math.Sin(e.Phase*4)*0.5 + 0.5
	e.ScaleX = 1 + math.Sin(e.Phase*8)*0.05
	e.ScaleY = 1 + math.Cos(e.Phase*8)*0.05
}

// patrol walks back and forth within reach of OriginX and the world bounds.
func (e *Enemy) patrol(reach, worldW float64) {
	e.X += e.Speed * e.Dir

	lo := math.Max(0, e.OriginX-reach)
	hi := math.Min(worldW-e.W, e.OriginX+reach)
	if e.X <= lo {
		e.X = lo
		e.Dir = 1
	} else if e.X >= hi {
		e.X = hi
		e.Dir = -1
	}
}

// fall applies gravity and lands on platforms with the same rule as the player.
func (e *Enemy) fall(gravity, maxFall float64, plats []Platform) {
	e.VY = math.Min(e.VY+gravity, maxFall)
	prevBottom := e.Y + e.H
	e.Y += e.VY

	e.OnGround = false
	if top, ok := restingTop(plats, e.X, e.W, prevBottom, e.Y+e.H); ok {
		e.Y = top - e.H
		e.VY = 0
		e.OnGround = true
	}
}
