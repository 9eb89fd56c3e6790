package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

// scriptedGame records its inputs and ends after a fixed number of steps.
type scriptedGame struct {
	endAfter int
	steps    int
	resets   int
	frames   []core.InputFrame
	state    core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{Lives: 3}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Score += 10
	if g.steps >= g.endAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) Stats() clipper.RunStats {
	return clipper.RunStats{Stomps: 2, Coins: 1, Ticks: g.steps}
}

type fakeRecorder struct {
	runs []storage.RunRecord
	err  error
}

func (r *fakeRecorder) SaveRun(run storage.RunRecord) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

func newTestModel(g *scriptedGame, rec storage.RunRecorder) GameModel {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, rec, nil, cfg)
	m.Init()
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// tick delivers one tick for the model's own loop.
func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{Loop: m.loop})
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestHeldKeyPersistsThenReleases(t *testing.T) {
	g := &scriptedGame{endAfter: 1000}
	m := newTestModel(g, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for j := 0; j < firstHold; j++ {
		m = tick(t, m)
	}
	m = tick(t, m)

	for i := 0; i < firstHold; i++ {
		if !g.frames[i].Has(core.ActionRight) {
			t.Fatalf("tick %d: right should be held", i)
		}
	}
	if g.frames[firstHold].Has(core.ActionRight) {
		t.Error("right should be released once the hold runs out")
	}
}

func TestJumpIsOneShot(t *testing.T) {
	g := &scriptedGame{endAfter: 1000}
	m := newTestModel(g, nil)

	m = press(t, m, keyRunes(" "))
	m = tick(t, m)
	m = tick(t, m)

	if !g.frames[0].Has(core.ActionJump) {
		t.Error("jump should reach the first tick after the press")
	}
	if g.frames[1].Has(core.ActionJump) {
		t.Error("jump must not repeat on the next tick")
	}
}

func TestShiftArrowEngagesRun(t *testing.T) {
	g := &scriptedGame{endAfter: 1000}
	m := newTestModel(g, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	tick(t, m)

	f := g.frames[0]
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionRun) {
		t.Errorf("shift+left should hold left and run, got %v", f.Actions)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &scriptedGame{endAfter: 1000}
	m := newTestModel(g, nil)

	next, cmd := m.Update(TickMsg{Loop: m.loop + 1000})
	if cmd != nil {
		t.Error("stale tick must not schedule another tick")
	}
	if len(g.frames) != 0 {
		t.Error("stale tick must not step the game")
	}
	_ = next
}

func TestGameOverSavesRunOnce(t *testing.T) {
	g := &scriptedGame{endAfter: 3}
	rec := &fakeRecorder{}
	m := newTestModel(g, rec)

	for j := 0; j < 6; j++ {
		m = tick(t, m)
	}

	if len(rec.runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(rec.runs))
	}
	want := storage.RunRecord{GameID: "scripted", Score: 30, Stomps: 2, Coins: 1, Ticks: 3}
	if rec.runs[0] != want {
		t.Errorf("saved run = %+v, expected %+v", rec.runs[0], want)
	}
}

func TestSaveFailureKeepsGameRunning(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(g, rec)

	m = tick(t, m)
	if !m.scoreSaved {
		t.Error("failed save should still be marked as handled")
	}
	if m.IsQuitting() {
		t.Error("save failure must not quit")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	rec := &fakeRecorder{}
	m := newTestModel(g, rec)

	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("game should be over")
	}

	m = press(t, m, keyRunes("r"))
	m = tick(t, m)
	if g.resets != 2 {
		t.Errorf("expected restart to reset the game, resets = %d", g.resets)
	}
	if m.gameState.GameOver || m.scoreSaved {
		t.Error("restart should clear game over and the saved flag")
	}

	m = tick(t, m)
	if len(rec.runs) != 2 {
		t.Errorf("second run should be saved too, got %d runs", len(rec.runs))
	}
}

func TestBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &scriptedGame{endAfter: 2}
	m := newTestModel(g, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back must be ignored during play")
	}

	m = tick(t, m)
	m = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave after game over")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&scriptedGame{endAfter: 10}, nil)

	next, cmd := m.Update(keyRunes("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m := newTestModel(g, nil)
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(GameModel)

	if g.resets != 1 {
		t.Error("resize must not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}

func TestRealGameRunsThroughModel(t *testing.T) {
	for _, id := range []string{clipper.IDRunner, clipper.IDPlatformer} {
		t.Run(id, func(t *testing.T) {
			var g *clipper.Game
			if id == clipper.IDRunner {
				g = clipper.NewRunner()
			} else {
				g = clipper.NewPlatformer()
			}
			cfg := core.DefaultConfig()
			cfg.Seed = 7
			m := NewGameModel(g, nil, nil, cfg)
			m.Init()

			m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
			for j := 0; j < 30; j++ {
				m = tick(t, m)
			}
			if !strings.Contains(m.View(), "Score") {
				t.Error("HUD should be rendered")
			}
		})
	}
}
