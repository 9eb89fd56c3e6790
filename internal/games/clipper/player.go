package clipper

import (
	"math"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// jumpKind reports what a jump request did.
type jumpKind int

const (
	jumpNone jumpKind = iota
	jumpGround
	jumpDouble
)

// Player is the Clipper.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	OnGround   bool
	State      PlayerState
	Facing     float64
	Invincible int // Ticks of hit immunity left

	// Cosmetics
	Phase          float64
	ScaleX, ScaleY float64

	prevY         float64
	canDoubleJump bool
	cfg           config.PlayerConfig
}

// playerStep reports what happened during a player update.
type playerStep struct {
	Landed bool
	Moving bool
}

func newPlayer(cfg config.PlayerConfig, world config.WorldConfig) *Player {
	y := world.GroundY - cfg.Height
	return &Player{
		X:             cfg.SpawnX,
		Y:             y,
		W:             math.Max(0, cfg.Width),
		H:             math.Max(0, cfg.Height),
		OnGround:      true,
		State:         StateIdle,
		Facing:        1,
		ScaleX:        1,
		ScaleY:        1,
		prevY:         y,
		canDoubleJump: cfg.DoubleJump,
		cfg:           cfg,
	}
}

// Box returns the collision bounds.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// PrevBottom is the bottom edge before this frame's vertical move.
func (p *Player) PrevBottom() float64 {
	return p.prevY + p.H
}

func (p *Player) feet() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H
}

// Pose returns the cosmetic rig for the current frame.
func (p *Player) Pose() Pose {
	return PoseFor(PoseInput{Phase: p.Phase, State: p.State, VY: p.VY, Facing: p.Facing})
}

// Jump starts a jump from the ground, or a double jump in the air when
// enabled and not yet used. Otherwise it changes nothing.
func (p *Player) Jump() jumpKind {
	if p.OnGround {
		p.VY = -p.cfg.JumpPower
		p.OnGround = false
		return jumpGround
	}
	if p.cfg.DoubleJump && p.canDoubleJump {
		p.VY = -p.cfg.DoubleJumpPower
		p.canDoubleJump = false
		return jumpDouble
	}
	return jumpNone
}

// bounce launches the player off a stomped enemy and restores the double jump.
func (p *Player) bounce(power float64) {
	p.VY = -power
	p.OnGround = false
	p.canDoubleJump = p.cfg.DoubleJump
}

// update advances the player one frame against the level.
func (p *Player) update(in core.InputFrame, plats []Platform, worldW float64) playerStep {
	var step playerStep
	p.Phase += 0.1

	prevX := p.X
	p.move(in, worldW)
	step.Moving = math.Abs(p.X-prevX) > 0.1

	// Gravity
	p.VY = math.Min(p.VY+p.cfg.Gravity, p.cfg.MaxFallSpeed)
	p.prevY = p.Y
	p.Y += p.VY

	wasOnGround := p.OnGround
	p.OnGround = false
	if p.VY >= 0 {
		if top, ok := restingTop(plats, p.X, p.W, p.PrevBottom(), p.Y+p.H); ok {
			p.Y = top - p.H
			p.VY = 0
			p.OnGround = true
			p.canDoubleJump = p.cfg.DoubleJump
		}
	}

	if p.OnGround && !wasOnGround && p.ScaleY < 0.9 {
		p.ScaleY = 0.75
		step.Landed = true
	}

	p.State = NextPlayerState(p.OnGround, p.VY, step.Moving)

	if p.State.Airborne() {
		if p.VY < 0 {
			p.ScaleY = 1.15
		} else {
			p.ScaleY = 0.85
		}
		p.ScaleX = 1 / p.ScaleY
	}
	p.ScaleY = core.Approach(p.ScaleY, 1, 0.2)
	p.ScaleX = core.Approach(p.ScaleX, 1, 0.2)

	p.clamp(worldW)

	if p.Invincible > 0 {
		p.Invincible--
	}
	return step
}

// move applies horizontal input: direct speed when accel is 0, otherwise
// acceleration with friction and a run modifier.
func (p *Player) move(in core.InputFrame, worldW float64) {
	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}

	if p.cfg.Accel <= 0 {
		if in.Has(core.ActionLeft) {
			p.X = math.Max(0, p.X-p.cfg.Speed)
			p.Facing = -1
		}
		if in.Has(core.ActionRight) {
			p.X = math.Min(worldW-p.W, p.X+p.cfg.Speed)
			p.Facing = 1
		}
		return
	}

	maxSpeed := p.cfg.Speed
	if in.Has(core.ActionRun) && p.cfg.RunMultiplier > 0 {
		maxSpeed *= p.cfg.RunMultiplier
	}

	if dir != 0 {
		p.VX = core.ClampF(p.VX+dir*p.cfg.Accel, -maxSpeed, maxSpeed)
		p.Facing = dir
	} else {
		p.VX *= p.cfg.Friction
		if math.Abs(p.VX) < 0.1 {
			p.VX = 0
		}
	}
	p.X += p.VX
}

// clamp keeps the player inside [0, worldW-W].
func (p *Player) clamp(worldW float64) {
	maxX := math.Max(0, worldW-p.W)
	if p.X < 0 || p.X > maxX {
		p.X = core.ClampF(p.X, 0, maxX)
		p.VX = 0
	}
}
