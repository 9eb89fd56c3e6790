package clipper

import (
	"math"

	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// Shape is the cosmetic outline of a particle.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeStar
	ShapeSquare
)

// Particle is a short-lived decoration: dust, sparks, trails.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at birth, removed at <= 0
	Size   float64
	Color  core.Color
	Shape  Shape
}

// Update integrates one frame of motion and ages the particle.
func (p *Particle) Update(gravity, decay float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.Life -= decay
}

// updateParticles advances every particle and drops dead ones in place.
func updateParticles(ps []Particle, gravity, decay float64) []Particle {
	alive := ps[:0]
	for i := range ps {
		ps[i].Update(gravity, decay)
		if ps[i].Life > 0 {
			alive = append(alive, ps[i])
		}
	}
	// Clear the tail so dropped particles are not retained by the backing array.
	for i := len(alive); i < len(ps); i++ {
		ps[i] = Particle{}
	}
	return alive
}

func (g *Game) addParticle(x, y, vx, vy float64, c core.Color, s Shape) {
	g.particles = append(g.particles, Particle{
		X:     x,
		Y:     y,
		VX:    vx,
		VY:    vy,
		Life:  1,
		Size:  g.rng.Range(2, 6),
		Color: c,
		Shape: s,
	})
}

// emitJump fans gold sparks upward from the player's feet.
func (g *Game) emitJump() {
	x, y := g.player.feet()
	for j := 0; j < 10; j++ {
		angle := math.Pi*0.3 + g.rng.Float64()*math.Pi*0.4
		speed := g.rng.Range(2, 6)
		g.addParticle(x, y, math.Cos(angle)*speed*g.rng.Sign(), -math.Sin(angle)*speed, core.ColorGold, ShapeStar)
	}
}

// emitLanding kicks up a little dust.
func (g *Game) emitLanding() {
	x, y := g.player.feet()
	for j := 0; j < 5; j++ {
		g.addParticle(x, y, (g.rng.Float64()-0.5)*4, -g.rng.Float64()*3, core.ColorBrown, ShapeCircle)
	}
}

func (g *Game) emitRunDust() {
	x, y := g.player.feet()
	g.addParticle(x, y, (g.rng.Float64()-0.5)*2, -g.rng.Float64()*2, core.ColorGray, ShapeCircle)
}

// emitTrail leaves a spark behind a moving enemy.
func (g *Game) emitTrail(e *Enemy) {
	vx := g.rng.Range(1, 3) * -e.Dir
	g.addParticle(e.X+e.W/2, e.Y+e.H/2, vx, (g.rng.Float64()-0.5)*2, core.ColorRed, ShapeSquare)
}

// emitExplosion bursts a ring of 25 particles from the enemy's center.
func (g *Game) emitExplosion(e *Enemy) {
	const n = 25
	cx, cy := e.X+e.W/2, e.Y+e.H/2
	for i := 0; i < n; i++ {
		angle := math.Pi * 2 * float64(i) / n
		speed := g.rng.Range(3, 8)
		g.addParticle(cx, cy, math.Cos(angle)*speed, math.Sin(angle)*speed, core.ColorBrightRed, ShapeCircle)
	}
}

func (g *Game) emitStomp(e *Enemy) {
	cx, cy := e.X+e.W/2, e.Y
	for j := 0; j < 12; j++ {
		g.addParticle(cx, cy, g.rng.Range(-5, 5), -g.rng.Range(1, 6), core.ColorOrange, ShapeSquare)
	}
}

func (g *Game) emitCoin(c *Collectible) {
	const n = 12
	cx, cy := c.X+c.W/2, c.Y+c.H/2
	for i := 0; i < n; i++ {
		angle := math.Pi * 2 * float64(i) / n
		speed := g.rng.Range(2, 5)
		g.addParticle(cx, cy, math.Cos(angle)*speed, math.Sin(angle)*speed-2, core.ColorGold, ShapeStar)
	}
}
