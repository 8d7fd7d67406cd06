package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

func scoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	games := []storage.GameRecord{
		{RunID: "a", Score: 40, Turns: 4, Matches: 4, Rows: 2, Cols: 4, Won: true},
		{RunID: "b", Score: 90, Turns: 9, Matches: 8, Rows: 4, Cols: 4, Won: true},
		{RunID: "c", Score: 20, Turns: 2, Matches: 2, Rows: 2, Cols: 2, Won: true},
		{RunID: "d", Score: 70, Turns: 6, Matches: 4, Rows: 2, Cols: 4, Won: true},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
	}
	return store
}

func TestScoreboardGridTabs(t *testing.T) {
	m := NewScoreboardModel(scoreStore(t), 80, 24)

	want := []string{allGrids, "2x2", "2x4", "4x4"}
	if len(m.grids) != len(want) {
		t.Fatalf("grids = %q, want %q", m.grids, want)
	}
	for i := range want {
		if m.grids[i] != want[i] {
			t.Errorf("grids[%d] = %q, want %q", i, m.grids[i], want[i])
		}
	}
	if got := len(m.Scores()); got != 4 {
		t.Errorf("all grids: %d scores, want 4", got)
	}

	// 2x4, best first
	next, _ := m.Update(keyMsg("tab"))
	next, _ = next.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.Grid() != "2x4" {
		t.Fatalf("Grid() = %q, want 2x4", m.Grid())
	}
	scores := m.Scores()
	if len(scores) != 2 || scores[0].Score != 70 || scores[1].Score != 40 {
		t.Errorf("2x4 scores = %+v", scores)
	}
	if !strings.Contains(m.View(), "Played 2") {
		t.Error("stats line missing for a grid tab")
	}

	// Wraps backwards past the first tab
	next, _ = m.Update(keyMsg("left"))
	next, _ = next.Update(keyMsg("left"))
	next, _ = next.Update(keyMsg("left"))
	m = next.(ScoreboardModel)
	if m.Grid() != "4x4" {
		t.Errorf("Grid() = %q after wrapping, want 4x4", m.Grid())
	}
}

func TestScoreboardRecentToggle(t *testing.T) {
	m := NewScoreboardModel(scoreStore(t), 80, 24)

	next, _ := m.Update(keyMsg("r"))
	m = next.(ScoreboardModel)
	if !m.Recent() {
		t.Fatal("r should switch to recent games")
	}
	if got := len(m.Scores()); got != 4 {
		t.Errorf("recent: %d games, want 4", got)
	}
	if !strings.Contains(m.View(), "RECENT GAMES") {
		t.Error("title should name the recent view")
	}

	next, _ = m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	for _, g := range m.Scores() {
		if g.Grid() != "2x2" {
			t.Errorf("recent 2x2 tab lists %s", g.Grid())
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if m.Grid() != allGrids || len(m.Scores()) != 0 {
		t.Errorf("Grid() = %q, %d scores", m.Grid(), len(m.Scores()))
	}
	if !strings.Contains(m.View(), "No games here yet") {
		t.Error("empty message missing")
	}

	next, cmd := m.Update(keyMsg("esc"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}
