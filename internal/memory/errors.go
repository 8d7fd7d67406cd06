package memory

import (
	"errors"
	"fmt"
)

// InvalidGridError is returned when a grid cannot be built: the cell count is
// odd or a dimension is outside the allowed range.
type InvalidGridError struct {
	Rows, Cols int
	Reason     string
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("memory: invalid grid %dx%d: %s", e.Rows, e.Cols, e.Reason)
}

// InsufficientCatalogError is returned when the catalog holds fewer distinct
// cards than the grid has pairs.
type InsufficientCatalogError struct {
	Need, Have int
}

func (e *InsufficientCatalogError) Error() string {
	return fmt.Sprintf("memory: catalog has %d cards, grid needs %d pairs", e.Have, e.Need)
}

// DealError is returned by Deal when the slots cannot hold whole pairs.
type DealError struct {
	Slots int
}

func (e *DealError) Error() string {
	return fmt.Sprintf("memory: cannot deal pairs into %d slots", e.Slots)
}

// RecordError is returned when a save record cannot describe a playable game.
// Stores wrap it in their own corrupt-data errors; match on *RecordError to
// catch every inconsistent record, including card ids missing from the catalog.
type RecordError struct {
	Reason string
}

func (e *RecordError) Error() string {
	return "memory: invalid save record: " + e.Reason
}

var (
	// ErrNothingToSave is returned by SaveAndQuit when no game is in progress.
	ErrNothingToSave = errors.New("memory: no game in progress")

	// ErrNoProgressStore is returned when saving or loading without a store.
	ErrNoProgressStore = errors.New("memory: no progress store configured")
)
