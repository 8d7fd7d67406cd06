package tui

import (
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key     string
		action  core.Action
		isLeave bool
	}{
		{"q", core.ActionBack, true},
		{"esc", core.ActionBack, true},
		{"ctrl+c", core.ActionQuit, true},
		{"w", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"j", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"space", core.ActionFlip, false},
		{"enter", core.ActionFlip, false},
		{"r", core.ActionRestart, false},
		{"ctrl+s", core.ActionSave, false},
		{"ctrl+l", core.ActionLoad, false},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, isLeave := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if isLeave != tt.isLeave {
				t.Errorf("isLeave = %v, want %v", isLeave, tt.isLeave)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("space"), &frame) {
		t.Error("flip should not leave the game")
	}
	if !frame.Has(core.ActionFlip) {
		t.Error("frame should hold the flip action")
	}

	frame.Clear()
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should leave the game")
	}
	if frame.Has(core.ActionBack) {
		t.Error("leave keys are not recorded in the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"up", MenuActionUp},
		{"s", MenuActionDown},
		{"h", MenuActionLeft},
		{"l", MenuActionRight},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"z", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
