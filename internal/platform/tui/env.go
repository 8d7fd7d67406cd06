package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/catalog"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/savefile"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Env holds the collaborators shared by every screen of a player session.
// Store and Saves may be nil; the game then runs without history or saves.
type Env struct {
	Catalog  *catalog.Catalog
	Settings memory.Settings
	Store    *storage.Store
	Saves    *savefile.Store
	Logger   *log.Logger
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// sessionOptions wires the stores into a new game session.
func (e Env) sessionOptions() []memory.Option {
	var opts []memory.Option
	if e.Saves != nil {
		opts = append(opts, memory.WithProgressStore(e.Saves))
	}
	if e.Store != nil {
		opts = append(opts, memory.WithResultRecorder(e.Store))
	}
	return opts
}

// hasSave reports whether a saved game can be continued.
func (e Env) hasSave() bool {
	return e.Saves != nil && e.Saves.Exists()
}
