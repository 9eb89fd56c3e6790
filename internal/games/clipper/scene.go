package clipper

import (
	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// Scene is a read-only copy of everything a renderer needs for one frame.
// Frontends draw from it without touching the simulation.
type Scene struct {
	Variant string
	World   config.WorldConfig
	Tick    int

	CameraX        float64
	ShakeX, ShakeY float64
	Flash          float64

	Player    PlayerView
	Enemies   []EnemyView
	Platforms []Platform
	Coins     []Collectible
	Particles []Particle
	Clouds    []Cloud
	Layers    []ParallaxLayer

	Score     int
	HighScore int
	Lives     int
	Speed     float64
	CoinsLeft int
	NewBest   bool
	GameOver  bool
	Paused    bool
}

// PlayerView is the drawable state of the player.
type PlayerView struct {
	Box            core.Box
	State          PlayerState
	Pose           Pose
	Facing         float64
	ScaleX, ScaleY float64
	OnGround       bool
	Blinking       bool // Invincible and in the hidden half of a blink
}

// EnemyView is the drawable state of an enemy.
type EnemyView struct {
	Box            core.Box
	Facing         float64
	Bob            float64
	Rotation       float64
	Glow           float64
	ScaleX, ScaleY float64
}

// Scene snapshots the current frame.
func (g *Game) Scene() Scene {
	p := g.player
	shakeX, shakeY := g.effects.Offset(g.tickCount)

	enemies := make([]EnemyView, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemyView{
			Box:      e.Box(),
			Facing:   e.Dir,
			Bob:      e.Bob,
			Rotation: e.Rotation,
			Glow:     e.Glow,
			ScaleX:   e.ScaleX,
			ScaleY:   e.ScaleY,
		}
	}

	return Scene{
		Variant: g.cfg.Variant,
		World:   g.cfg.World,
		Tick:    g.tickCount,
		CameraX: g.camera.X,
		ShakeX:  shakeX,
		ShakeY:  shakeY,
		Flash:   g.effects.Flash,
		Player: PlayerView{
			Box:      p.Box(),
			State:    p.State,
			Pose:     p.Pose(),
			Facing:   p.Facing,
			ScaleX:   p.ScaleX,
			ScaleY:   p.ScaleY,
			OnGround: p.OnGround,
			Blinking: p.Invincible > 0 && (p.Invincible/6)%2 == 1,
		},
		Enemies:   enemies,
		Platforms: append([]Platform(nil), g.platforms...),
		Coins:     append([]Collectible(nil), g.coins...),
		Particles: append([]Particle(nil), g.particles...),
		Clouds:    append([]Cloud(nil), g.clouds...),
		Layers:    append([]ParallaxLayer(nil), g.layers...),
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     g.lives,
		Speed:     g.speedMultiplier,
		CoinsLeft: len(g.coins),
		NewBest:   g.newBest,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}
