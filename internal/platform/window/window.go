// Package window is the graphical frontend. It runs the simulation in an
// ebiten window at the world's native canvas size and draws every frame
// from the game's Scene.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/sprite"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

// Options configures a window run. Zero values pick defaults.
type Options struct {
	Scale    float64 // Window size relative to the world canvas
	TickRate int
	Seed     int64
	Recorder storage.RunRecorder
	Sprites  sprite.Lookup[*ebiten.Image]
	Logger   *log.Logger
}

// Window implements ebiten.Game for one variant.
type Window struct {
	game       *clipper.Game
	opts       Options
	keys       keyState
	logger     *log.Logger
	state      core.GameState
	scoreSaved bool
	viewW      int
	viewH      int
}

// New resets the game and wraps it in a window.
func New(game *clipper.Game, opts Options) *Window {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = opts.TickRate
	runtime.Seed = opts.Seed
	game.Reset(runtime)

	world := game.Config().World
	return &Window{
		game:   game,
		opts:   opts,
		keys:   ebitenKeys{},
		logger: opts.Logger,
		state:  game.State(),
		viewW:  int(world.ViewWidth),
		viewH:  int(world.ViewHeight),
	}
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	if w.keys.justPressed(ebiten.KeyEscape) || w.keys.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if w.state.GameOver && w.keys.justPressed(ebiten.KeyR) {
		w.restart()
		return nil
	}

	res := w.game.Step(readInput(w.keys))
	w.state = res.State
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventNewHighScore:
			w.logger.Info("new high score", "game", w.game.ID(), "score", ev.Value)
		case core.EventGameOver:
			w.logger.Debug("game over", "game", w.game.ID(), "score", ev.Value)
		}
	}

	if w.state.GameOver && !w.scoreSaved {
		w.saveRun()
		w.scoreSaved = true
	}
	return nil
}

func (w *Window) restart() {
	runtime := core.DefaultConfig()
	runtime.TickRate = w.opts.TickRate
	w.game.Reset(runtime)
	w.state = w.game.State()
	w.scoreSaved = false
}

// saveRun records the finished run. Failure is logged and ignored.
func (w *Window) saveRun() {
	if w.opts.Recorder == nil || w.state.Score <= 0 {
		return
	}
	stats := w.game.Stats()
	run := storage.RunRecord{
		GameID: w.game.ID(),
		Score:  w.state.Score,
		Stomps: stats.Stomps,
		Coins:  stats.Coins,
		Ticks:  stats.Ticks,
	}
	if _, err := w.opts.Recorder.SaveRun(run); err != nil {
		w.logger.Warn("could not save run", "game", run.GameID, "score", run.Score, "error", err)
	}
}

// Draw renders the current scene.
func (w *Window) Draw(screen *ebiten.Image) {
	drawScene(screen, w.game.Scene(), w.opts.Sprites)
}

// Layout fixes the logical screen to the world canvas; ebiten scales it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.viewW, w.viewH
}

// Run opens the window and blocks until it is closed.
func Run(game *clipper.Game, opts Options) error {
	w := New(game, opts)

	ebiten.SetWindowSize(int(float64(w.viewW)*w.opts.Scale), int(float64(w.viewH)*w.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TickRate)

	w.logger.Info("window opened", "game", game.ID(), "width", w.viewW, "height", w.viewH, "scale", w.opts.Scale)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
