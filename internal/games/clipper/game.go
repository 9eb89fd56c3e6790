// Package clipper implements Clipper vs Lighter, a side-scrolling jump and
// run game in two variants: the single-screen runner and a scrolling
// platformer with floating platforms, patrolling enemies and coins.
//
// The simulation runs in fixed ticks in world units (a 1200x600 canvas by
// default); frontends scale it to their own surface.
package clipper

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/registry"
	"github.com/vovakirdan/clipper-arcade/internal/sprite"
)

// Variant IDs and titles.
const (
	IDRunner        = "clipper"
	IDPlatformer    = "clipper_platformer"
	TitleRunner     = "Clipper vs Lighter"
	TitlePlatformer = "Clipper vs Lighter: Platformer"
)

// HighScoreStore persists the best score per game ID.
type HighScoreStore interface {
	LoadHighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) error
}

// Game is the orchestrator. It owns every entity collection and applies
// the scoring, lives and game-over rules.
type Game struct {
	id      string
	title   string
	variant string

	cfg        config.GameConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rng

	player    *Player
	enemies   []*Enemy
	platforms []Platform
	coins     []Collectible
	particles []Particle
	clouds    []Cloud
	layers    []ParallaxLayer
	camera    Camera
	effects   Effects

	score     int
	highScore int
	lives     int
	stats     RunStats
	newBest   bool
	gameOver  bool
	paused    bool
	tickCount int

	spawnTimer      int
	spawnInterval   int
	speedMultiplier float64

	events []core.Event
	store  HighScoreStore
	art    sprite.Lookup[[]string]
}

// RunStats counts what happened during a run.
type RunStats struct {
	Stomps        int
	Coins         int
	EnemiesPassed int
	Hits          int
	Ticks         int
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	highScores       HighScoreStore
	textSprites      sprite.Lookup[[]string]
)

// SetConfigPath sets a custom YAML config path for subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetHighScoreStore sets the store used by games created afterwards.
func SetHighScoreStore(s HighScoreStore) {
	highScores = s
}

// SetSpriteSource sets the text-art sprites used by the terminal renderer.
func SetSpriteSource(s sprite.Lookup[[]string]) {
	textSprites = s
}

// NewRunner creates the single-screen runner.
func NewRunner() *Game {
	return newGame(IDRunner, TitleRunner, config.VariantRunner, highScores)
}

// NewPlatformer creates the scrolling platformer.
func NewPlatformer() *Game {
	return newGame(IDPlatformer, TitlePlatformer, config.VariantPlatformer, highScores)
}

// newGame builds a game and reads the stored high score once.
func newGame(id, title, variant string, store HighScoreStore) *Game {
	g := &Game{
		id:      id,
		title:   title,
		variant: variant,
		store:   store,
		art:     textSprites,
	}
	if store != nil {
		hs, err := store.LoadHighScore(id)
		if err != nil {
			log.Warn("could not read high score", "game", id, "error", err)
		}
		g.highScore = max(hs, 0)
	}
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the active game config.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset loads the config and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		log.Warn("using default config", "game", g.id, "error", err)
		cfg = config.LoadDefault(g.variant)
	}
	cfg.Variant = g.variant
	config.ApplyPreset(&cfg, difficultyPreset)

	g.start(cfg, runtime)
}

// start resets every piece of run state for the given config.
func (g *Game) start(cfg config.GameConfig, runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.cfg = cfg
	g.runtime = runtime
	g.rng = newRNG(runtime.Seed)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.player = newPlayer(cfg.Player, cfg.World)
	g.enemies = nil
	g.platforms = buildPlatforms(cfg)
	g.coins = buildCollectibles(cfg.Level.Coins)
	g.particles = nil

	g.clouds = make([]Cloud, cfg.Level.Clouds)
	for i := range g.clouds {
		g.clouds[i] = newCloud(g.rng, cfg.World.ViewWidth)
	}
	g.layers = make([]ParallaxLayer, len(cfg.Camera.Parallax))
	for i, f := range cfg.Camera.Parallax {
		g.layers[i] = ParallaxLayer{Factor: f}
	}
	g.camera = Camera{Smoothing: cfg.Camera.Smoothing}
	g.camera.Snap(g.player.X+g.player.W/2, cfg.World.ViewWidth, cfg.World.Width)
	g.effects = Effects{}

	g.score = 0
	g.lives = cfg.Player.Lives
	g.stats = RunStats{}
	g.newBest = false
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	g.spawnTimer = 0
	g.spawnInterval = g.difficulty.SpawnInterval(cfg.Spawn.MaxInterval, cfg.Spawn.MinInterval, 0, 0)
	g.speedMultiplier = g.difficulty.SpeedMultiplier(0, 0)
	g.events = nil
}

// Step advances the game by one tick:
// spawn, player, enemies, collectibles, decoration, then game over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.gameOver {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++
	g.stats.Ticks = g.tickCount

	g.updateSpawner()
	g.updatePlayer(in)
	g.updateEnemies()
	if g.lives > 0 {
		g.updateCollectibles()
	}
	g.updateDecoration()

	if g.lives <= 0 {
		g.endRun()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// updateSpawner spawns an enemy once the interval has elapsed, then
// re-derives the interval and speed multiplier from the current difficulty.
func (g *Game) updateSpawner() {
	g.spawnTimer++
	if g.spawnTimer <= g.spawnInterval {
		return
	}
	if limit := g.cfg.Enemy.MaxAlive; limit > 0 && len(g.enemies) >= limit {
		return
	}

	g.spawnEnemy()
	g.spawnTimer = 0
	g.spawnInterval = g.difficulty.SpawnInterval(g.cfg.Spawn.MaxInterval, g.cfg.Spawn.MinInterval, g.score, g.tickCount)
	g.speedMultiplier = g.difficulty.SpeedMultiplier(g.score, g.tickCount)
}

// spawnEnemy places a mover just past the right world edge, or drops a
// patroller into the right part of the view.
func (g *Game) spawnEnemy() {
	ec := g.cfg.Enemy
	world := g.cfg.World
	speed := ec.BaseSpeed * g.speedMultiplier
	phase := g.rng.Float64() * 10

	if ec.Behavior == config.BehaviorPatrol {
		x := g.camera.X + world.ViewWidth*g.rng.Range(0.6, 0.95)
		x = core.ClampF(x, 0, world.Width-ec.Width)
		e := newEnemy(ec, x, -ec.Height, speed, phase)
		e.Dir = g.rng.Sign()
		g.enemies = append(g.enemies, e)
		return
	}

	g.enemies = append(g.enemies, newEnemy(ec, world.Width+50, world.GroundY-ec.Height, speed, phase))
}

func (g *Game) updatePlayer(in core.InputFrame) {
	p := g.player

	if in.Has(core.ActionJump) {
		switch p.Jump() {
		case jumpGround:
			g.emitJump()
			g.emit(core.EventJump, 0)
		case jumpDouble:
			g.emitJump()
			g.emit(core.EventDoubleJump, 0)
		}
	}

	step := p.update(in, g.platforms, g.cfg.World.Width)

	if step.Landed {
		g.emitLanding()
		g.emit(core.EventLand, 0)
	}
	if p.State == StateRunning && g.rng.Float64() > 0.7 {
		g.emitRunDust()
	}
}

// updateEnemies moves enemies and resolves contacts, newest first so
// removal in place is safe. Each enemy is resolved at most once per tick.
func (g *Game) updateEnemies() {
	for i := len(g.enemies) - 1; i >= 0; i-- {
		e := g.enemies[i]
		e.update(g.cfg.Enemy, g.cfg.Player, g.platforms, g.cfg.World.Width)

		if g.cfg.Enemy.TrailChance > 0 && g.rng.Float64() < g.cfg.Enemy.TrailChance {
			g.emitTrail(e)
		}

		if g.lives > 0 {
			switch classifyContact(g.player, e, g.cfg.Collision) {
			case contactStomp:
				g.stompEnemy(e)
				g.removeEnemy(i)
				continue
			case contactSide:
				if g.player.Invincible == 0 {
					g.hitPlayer(e)
					g.removeEnemy(i)
					continue
				}
			}
		}

		if g.exited(e) {
			g.removeEnemy(i)
			g.score += g.cfg.Scoring.EnemyPassed
			g.stats.EnemiesPassed++
			g.emit(core.EventEnemyPassed, g.cfg.Scoring.EnemyPassed)
		}
	}
}

func (g *Game) removeEnemy(i int) {
	g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
}

// exited reports whether an enemy left play: movers past the left world
// edge, patrollers a full view behind the camera.
func (g *Game) exited(e *Enemy) bool {
	if e.Behavior == config.BehaviorPatrol {
		return e.X+e.W < g.camera.X-g.cfg.World.ViewWidth
	}
	return e.X+e.W < 0
}

func (g *Game) stompEnemy(e *Enemy) {
	points := g.cfg.Scoring.Stomp
	g.score += points
	g.stats.Stomps++
	g.player.bounce(g.cfg.Player.StompBounce)
	g.effects.kick(g.cfg.Effects.StompShake)
	g.emitStomp(e)
	g.emit(core.EventStomp, points)
}

// hitPlayer costs a life, shakes the screen and knocks the player away
// from the enemy. The invincibility window blocks repeat hits.
func (g *Game) hitPlayer(e *Enemy) {
	p := g.player
	g.lives--
	g.stats.Hits++
	g.effects.Shake = g.cfg.Effects.HitShake
	g.effects.Flash = 1
	g.emitExplosion(e)

	p.VY = -g.cfg.Player.KnockbackY
	p.OnGround = false
	if p.X < e.X {
		p.X -= g.cfg.Player.KnockbackX
	} else {
		p.X += g.cfg.Player.KnockbackX
	}
	p.clamp(g.cfg.World.Width)
	p.Invincible = g.cfg.Player.InvincibleTicks

	g.emit(core.EventHit, g.lives)
}

func (g *Game) updateCollectibles() {
	for i := len(g.coins) - 1; i >= 0; i-- {
		c := &g.coins[i]
		c.update()
		if !touches(g.player, c, g.cfg.Collision) {
			continue
		}
		g.emitCoin(c)
		g.coins = append(g.coins[:i], g.coins[i+1:]...)
		g.score += g.cfg.Scoring.Coin
		g.stats.Coins++
		g.emit(core.EventCoin, g.cfg.Scoring.Coin)
	}
}

// updateDecoration advances particles, clouds, camera, parallax and effects.
func (g *Game) updateDecoration() {
	g.particles = updateParticles(g.particles, g.cfg.Particles.Gravity, g.cfg.Particles.Decay)

	for i := range g.clouds {
		g.clouds[i].update(g.rng, g.cfg.World.ViewWidth)
	}

	g.camera.Follow(g.player.X+g.player.W/2, g.cfg.World.ViewWidth, g.cfg.World.Width)
	for i := range g.layers {
		g.layers[i].update(g.camera.X)
	}

	g.effects.update(g.cfg.Effects)
}

// endRun stops the game and records a new high score.
func (g *Game) endRun() {
	g.gameOver = true
	g.emit(core.EventGameOver, g.score)

	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.newBest = true
	g.emit(core.EventNewHighScore, g.score)

	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.id, g.score); err != nil {
		log.Warn("could not save high score", "game", g.id, "error", err)
	}
}

// Stats returns the counters for the current run.
func (g *Game) Stats() RunStats {
	return g.stats
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     g.lives,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

func init() {
	registry.Register(IDRunner, TitleRunner, func() registry.Game {
		return NewRunner()
	})
	registry.Register(IDPlatformer, TitlePlatformer, func() registry.Game {
		return NewPlatformer()
	})
}
