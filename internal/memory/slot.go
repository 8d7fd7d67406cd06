package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// Unassigned is the card id of a slot that has not been dealt a card.
const Unassigned = -1

// Slot is one grid position and the card it holds.
// Slots are owned by a Session; callers only ever see copies.
type Slot struct {
	Index    int
	CardID   int
	Revealed bool // Face up
	Turning  bool // Mid-flip, clicks are ignored
	Matched  bool // Part of a found pair, waiting to be cleared
	Removed  bool // Cleared from the board
	Position core.Vec
	Size     core.Vec
}

// InPlay reports whether the slot still takes part in the game.
func (s *Slot) InPlay() bool {
	return !s.Matched && !s.Removed
}

// Assigned reports whether the slot holds a card.
func (s *Slot) Assigned() bool {
	return s.CardID != Unassigned
}

// Center returns the center of the slot in layout space.
func (s *Slot) Center() core.Vec {
	return core.V(s.Position.X+s.Size.X/2, s.Position.Y+s.Size.Y/2)
}

// Bounds returns the slot rectangle in layout space.
func (s *Slot) Bounds() core.RectF {
	return core.RectF{X: s.Position.X, Y: s.Position.Y, W: s.Size.X, H: s.Size.Y}
}
