package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

type fixedBest map[string]int

func (f fixedBest) LoadHighScore(id string) (int, error) { return f[id], nil }

type fakeScores struct {
	entries map[string][]storage.ScoreEntry
}

func (f fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	return f.entries[gameID], nil
}

func (f fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	stats := &storage.GameStats{GameID: gameID}
	for _, e := range f.entries[gameID] {
		stats.GamesCount++
		stats.HighScore = max(stats.HighScore, e.Score)
		stats.TotalStomps += e.Stomps
		stats.TotalCoins += e.Coins
		stats.TotalTicks += int64(e.Ticks)
	}
	return stats, nil
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func newTestSession() SessionModel {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 30
	return NewSessionModel(SessionDeps{
		Best: fixedBest{clipper.IDRunner: 420},
		Scores: fakeScores{entries: map[string][]storage.ScoreEntry{
			clipper.IDRunner: {{GameID: clipper.IDRunner, Score: 420, Stomps: 3, Ticks: 3600}},
		}},
	}, cfg)
}

func TestMenuListsVariantsWithBest(t *testing.T) {
	m := newTestSession()

	view := m.View()
	for _, want := range []string{clipper.TitleRunner, clipper.TitlePlatformer, "best 420"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}

	// Pause, then leave for the menu
	m = sessionUpdate(t, m, keyRunes("p"))
	m = sessionUpdate(t, m, TickMsg{Loop: m.gameModel.loop})
	if !m.gameModel.gameState.Paused {
		t.Fatal("game should be paused")
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Error("esc while paused should return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu must not end the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession()

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "420") {
		t.Error("scoreboard should list the stored run")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Error("esc should return from the scoreboard to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()

	next, cmd := m.Update(keyRunes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
