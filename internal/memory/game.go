package memory

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-memory/internal/catalog"
	"github.com/vovakirdan/tui-memory/internal/core"
)

const statusDuration = 2 * time.Second

// Game drives a Session from a fixed-rate host loop.
// It owns the keyboard cursor and the status line; all rules live in Session.
type Game struct {
	catalog  *catalog.Catalog
	settings Settings
	opts     []Option
	session  *Session
	bus      *Bus

	cursor  int
	tickDur time.Duration
	screenW int
	screenH int

	status     string
	statusLeft time.Duration
	statusErr  bool
}

// NewGame creates a game that deals from cat. Options are applied to every
// session the game creates.
func NewGame(cat *catalog.Catalog, settings Settings, opts ...Option) *Game {
	g := &Game{
		catalog:  cat,
		settings: settings,
		bus:      NewBus(),
	}
	g.opts = append([]Option{WithBus(g.bus)}, opts...)
	g.bus.Subscribe(g.onEvent)
	g.session = NewSession(cat, settings, g.opts...)
	return g
}

// Session returns the session being played.
func (g *Game) Session() *Session {
	return g.session
}

// Bus returns the bus events are published on.
func (g *Game) Bus() *Bus {
	return g.bus
}

// Reset creates a fresh session seeded from cfg and starts a game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.prepare(cfg)
	if err := g.session.StartGame(); err != nil {
		g.setError(err)
	}
}

// Resume creates a fresh session seeded from cfg and loads the saved game
// into it. On error the session stays in PhaseNotStarted.
func (g *Game) Resume(cfg core.RuntimeConfig) error {
	g.prepare(cfg)
	return g.Load()
}

func (g *Game) prepare(cfg core.RuntimeConfig) {
	g.Resize(cfg)

	settings := g.settings
	settings.Seed = cfg.Seed
	rows, cols := g.session.Rows(), g.session.Cols()
	g.session = NewSession(g.catalog, settings, g.opts...)
	g.cursor = 0
	g.status = ""
	g.statusLeft = 0
	if err := g.session.SetGridSize(rows, cols); err != nil {
		g.setError(err)
	}
}

// Resize updates the screen size and tick rate without touching the game.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickDur = cfg.TickDuration()
}

// SetGridSize changes the grid for the next game.
func (g *Game) SetGridSize(rows, cols int) error {
	return g.session.SetGridSize(rows, cols)
}

// Step applies one tick of input and advances time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionSave):
		if g.SaveAndQuit() == nil {
			return core.StepResult{State: g.State(), Left: true}
		}
	case in.Has(core.ActionLoad):
		g.Load()
	}

	if in.Has(core.ActionUp) {
		g.moveCursor(0, -1)
	}
	if in.Has(core.ActionDown) {
		g.moveCursor(0, 1)
	}
	if in.Has(core.ActionLeft) {
		g.moveCursor(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.moveCursor(1, 0)
	}
	if in.Has(core.ActionFlip) {
		g.session.ClickSlot(g.cursor)
	}

	g.session.Update(g.tickDur)
	g.fixCursor()

	if g.statusLeft > 0 {
		g.statusLeft -= g.tickDur
		if g.statusLeft <= 0 {
			g.status = ""
			g.statusErr = false
		}
	}

	return core.StepResult{State: g.State()}
}

// State reports the score and whether the game has been won.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score().Score,
		GameOver: phase == PhaseWon,
		Paused:   phase != PhasePlaying,
	}
}

// InProgress reports whether quitting now would lose progress.
func (g *Game) InProgress() bool {
	phase := g.session.Phase()
	return phase == PhaseShowing || phase == PhasePlaying
}

// SaveAndQuit saves the game and leaves it. The error is also shown in the
// status line.
func (g *Game) SaveAndQuit() error {
	if err := g.session.SaveAndQuit(); err != nil {
		g.setError(err)
		return err
	}
	g.setStatus("Progress saved")
	return nil
}

// Load replaces the current game with the saved one.
func (g *Game) Load() error {
	// LoadFailed sets the status line.
	if err := g.session.LoadProgress(); err != nil {
		return err
	}
	g.cursor = 0
	g.fixCursor()
	return nil
}

// Status returns the current status message and whether it reports an error.
func (g *Game) Status() (string, bool) {
	return g.status, g.statusErr
}

// Cursor returns the index of the slot under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Snapshot returns the session state with the cursor filled in.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Cursor = g.cursor
	return snap
}

func (g *Game) restart() {
	if err := g.session.StartGame(); err != nil {
		g.setError(err)
		return
	}
	g.cursor = 0
}

func (g *Game) onEvent(e Event) {
	switch e := e.(type) {
	case MatchSucceeded:
		g.setStatus(fmt.Sprintf("Match! +%d", e.Combo*g.session.score.Award()))
	case MatchFailed:
		g.setStatus("No match")
	case GameWon:
		g.setStatus(fmt.Sprintf("You won with %d points in %d turns", e.Score, e.Turns))
	case ProgressLoaded:
		g.setStatus("Progress loaded")
	case LoadFailed:
		g.setError(e.Err)
	case RecordFailed:
		g.status = "Score could not be recorded"
		g.statusErr = true
		g.statusLeft = statusDuration
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusErr = false
	g.statusLeft = statusDuration
}

func (g *Game) setError(err error) {
	g.status = ErrorMessage(err)
	g.statusErr = true
	g.statusLeft = statusDuration
}

// ErrorMessage turns a session error into a message for the player.
func ErrorMessage(err error) string {
	var gridErr *InvalidGridError
	var catErr *InsufficientCatalogError
	var recErr *RecordError
	switch {
	case errors.As(err, &gridErr):
		return "Please select an even row or column!"
	case errors.As(err, &catErr):
		return fmt.Sprintf("Not enough cards for this grid (%d of %d)", catErr.Have, catErr.Need)
	case errors.Is(err, ErrNothingToSave):
		return "Nothing to save"
	case errors.As(err, &recErr):
		return "Save data is damaged"
	default:
		return err.Error()
	}
}

// fixCursor moves the cursor off cleared slots.
func (g *Game) fixCursor() {
	slots := g.session.slots
	if len(slots) == 0 {
		g.cursor = 0
		return
	}
	if g.cursor >= 0 && g.cursor < len(slots) && !slots[g.cursor].Removed {
		return
	}
	from := core.V(0, 0)
	if g.cursor >= 0 && g.cursor < len(slots) {
		from = slots[g.cursor].Center()
	}
	best, bestDist := -1, math.MaxFloat64
	for i, s := range slots {
		if s.Removed {
			continue
		}
		c := s.Center()
		d := math.Hypot(c.X-from.X, c.Y-from.Y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		g.cursor = best
	}
}

// moveCursor moves to the closest remaining slot in direction (dx, dy).
// Distance off the axis of travel costs double so moves stay in line.
func (g *Game) moveCursor(dx, dy float64) {
	slots := g.session.slots
	if g.cursor < 0 || g.cursor >= len(slots) {
		return
	}
	from := slots[g.cursor].Center()
	best, bestCost := -1, math.MaxFloat64
	for i, s := range slots {
		if i == g.cursor || s.Removed {
			continue
		}
		c := s.Center()
		along := (c.X-from.X)*dx + (c.Y-from.Y)*dy
		if along <= 0 {
			continue
		}
		across := math.Abs((c.X-from.X)*dy) + math.Abs((c.Y-from.Y)*dx)
		if cost := along + 2*across; cost < bestCost {
			best, bestCost = i, cost
		}
	}
	if best >= 0 {
		g.cursor = best
	}
}
