package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

type failingScores struct{}

func (failingScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("disk on fire")
}

func (failingScores) GetGameStats(string) (*storage.GameStats, error) {
	return nil, errors.New("disk on fire")
}

func boardConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 120, 40
	return cfg
}

func boardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb
}

func TestSortRuns(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	runs := []storage.ScoreEntry{
		{ID: 1, Score: 50, CreatedAt: base},
		{ID: 2, Score: 300, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Score: 120, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Score: 80, CreatedAt: base.Add(2 * time.Hour)},
	}

	tests := []struct {
		name  string
		order runOrder
		want  []int64
	}{
		{"best", orderBest, []int64{2, 3, 4, 1}},
		{"recent with id tiebreak", orderRecent, []int64{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortRuns(runs, tt.order)
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Fatalf("position %d: got id %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}

	if runs[0].ID != 1 || runs[1].ID != 2 {
		t.Error("sortRuns must not reorder its input")
	}
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	store := fakeScores{entries: map[string][]storage.ScoreEntry{
		clipper.IDRunner:     {{ID: 1, GameID: clipper.IDRunner, Score: 420, Stomps: 3, Ticks: 3600}},
		clipper.IDPlatformer: {{ID: 2, GameID: clipper.IDPlatformer, Score: 777, Coins: 9, Ticks: 7200}},
	}}
	m := NewScoreboardModel(store, boardConfig())

	view := m.View()
	if !strings.Contains(view, "420") || strings.Contains(view, "777") {
		t.Fatal("board should open on the runner's runs")
	}
	if !strings.Contains(view, "1 runs") || !strings.Contains(view, "played 1:00") {
		t.Errorf("runner summary missing from view:\n%s", view)
	}

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view = m.View()
	if !strings.Contains(view, "777") {
		t.Error("tab should switch to the platformer's runs")
	}
	if !strings.Contains(view, "coins 9") {
		t.Errorf("platformer summary missing from view:\n%s", view)
	}

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.gameID() != clipper.IDRunner {
		t.Errorf("shift+tab should go back to the runner, got %q", m.gameID())
	}
}

func TestScoreboardSortToggle(t *testing.T) {
	m := NewScoreboardModel(fakeScores{}, boardConfig())
	if !strings.Contains(m.View(), "sorted by best") {
		t.Fatal("board should start sorted by best")
	}

	m = boardUpdate(t, m, keyRunes("s"))
	if m.order != orderRecent || !strings.Contains(m.View(), "sorted by most recent") {
		t.Error("s should switch to most recent")
	}

	m = boardUpdate(t, m, keyRunes("s"))
	if m.order != orderBest {
		t.Error("second s should switch back to best")
	}
}

func TestScoreboardEmptyAndErrorStates(t *testing.T) {
	empty := NewScoreboardModel(nil, boardConfig())
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("a board without a store should show the empty message")
	}

	broken := NewScoreboardModel(failingScores{}, boardConfig())
	view := broken.View()
	if !strings.Contains(view, "Could not load runs") || !strings.Contains(view, "disk on fire") {
		t.Errorf("load error should be shown, got:\n%s", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, boardConfig())
	back := boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back, not quit")
	}

	quit := boardUpdate(t, m, keyRunes("q"))
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit, not go back")
	}
}
