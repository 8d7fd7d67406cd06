package tui

import (
	"strings"
	"testing"
)

func pressMenu(t *testing.T, m MenuModel, keys ...string) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuOddGridShowsError(t *testing.T) {
	m := NewMenuModel(testEnv(t, false), testConfig(), 3, 3)

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MenuModel)

	if m.Choice() != MenuChoiceNone {
		t.Errorf("Choice() = %v, want none", m.Choice())
	}
	if m.GridError() != "Please select an even row or column!" {
		t.Errorf("GridError() = %q", m.GridError())
	}
	if cmd == nil {
		t.Fatal("expected a command that clears the error")
	}
	if !strings.Contains(m.View(), "Please select an even row or column!") {
		t.Error("error should be shown in the menu")
	}

	// A stale clear from an earlier error keeps the message.
	next, _ = m.Update(clearGridErrorMsg{id: m.gridErrID - 1})
	m = next.(MenuModel)
	if m.GridError() == "" {
		t.Error("stale clear removed the error")
	}

	next, _ = m.Update(clearGridErrorMsg{id: m.gridErrID})
	m = next.(MenuModel)
	if m.GridError() != "" {
		t.Errorf("GridError() = %q after clear", m.GridError())
	}
}

func TestMenuEvenGridStartsGame(t *testing.T) {
	m := NewMenuModel(testEnv(t, false), testConfig(), 2, 4)
	m = pressMenu(t, m, "enter")

	if m.Choice() != MenuChoicePlay {
		t.Errorf("Choice() = %v, want play", m.Choice())
	}
	if m.GridError() != "" {
		t.Errorf("unexpected grid error %q", m.GridError())
	}
}

func TestMenuAdjustGrid(t *testing.T) {
	m := NewMenuModel(testEnv(t, false), testConfig(), 4, 4)

	// Rows
	m = pressMenu(t, m, "down", "down", "right")
	if rows, cols := m.Grid(); rows != 5 || cols != 4 {
		t.Errorf("Grid() = %dx%d, want 5x4", rows, cols)
	}

	// Columns
	m = pressMenu(t, m, "down", "left", "left")
	if rows, cols := m.Grid(); rows != 5 || cols != 2 {
		t.Errorf("Grid() = %dx%d, want 5x2", rows, cols)
	}

	// Cannot go below the minimum
	m = pressMenu(t, m, "left")
	if _, cols := m.Grid(); cols != 2 {
		t.Errorf("cols = %d, want 2", cols)
	}

	// Preset easy is 2x4
	m = pressMenu(t, m, "down", "right")
	rows, cols := m.Grid()
	if rows*cols%2 != 0 {
		t.Errorf("preset grid %dx%d is odd", rows, cols)
	}
}

func TestMenuContinueNeedsSave(t *testing.T) {
	m := NewMenuModel(testEnv(t, true), testConfig(), 2, 2)
	m = pressMenu(t, m, "down", "enter")
	if m.Choice() != MenuChoiceNone {
		t.Errorf("Choice() = %v without a save, want none", m.Choice())
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuChoice
	}{
		{"quit key", []string{"q"}, MenuChoiceQuit},
		{"scoreboard key", []string{"tab"}, MenuChoiceScoreboard},
		{"high scores item", []string{"down", "down", "down", "down", "down", "enter"}, MenuChoiceScoreboard},
		{"quit item", []string{"down", "down", "down", "down", "down", "down", "enter"}, MenuChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(testEnv(t, false), testConfig(), 2, 2)
			m = pressMenu(t, m, tt.keys...)
			if m.Choice() != tt.want {
				t.Errorf("Choice() = %v, want %v", m.Choice(), tt.want)
			}
		})
	}
}
