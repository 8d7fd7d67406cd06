package memory

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/catalog"
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Phase is the state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseShowing          // All cards face up, clicks ignored
	PhasePlaying          // Accepting clicks
	PhaseWon              // Terminal until the next StartGame
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseShowing:
		return "showing"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// LayoutSpace is the container grids are laid out in. Hosts scale it to their
// own surface, so saved positions stay valid across window sizes.
var LayoutSpace = core.RectF{X: 0, Y: 0, W: 800, H: 600}

// Settings are the tunable values of a session.
type Settings struct {
	Rows, Cols       int
	MaxRows, MaxCols int
	Container        core.RectF
	ShowDuration     time.Duration
	ResolveDelay     time.Duration
	FlipDuration     time.Duration
	LoadReveal       time.Duration
	ReloadReveal     config.RevealPolicy
	MatchAward       int
	Seed             int64
}

// SettingsFromConfig converts the YAML configuration into session settings.
func SettingsFromConfig(cfg config.MemoryConfig) Settings {
	return Settings{
		Rows:         cfg.Grid.Rows,
		Cols:         cfg.Grid.Cols,
		MaxRows:      cfg.Grid.MaxRows,
		MaxCols:      cfg.Grid.MaxCols,
		Container:    LayoutSpace,
		ShowDuration: cfg.Timing.ShowDuration,
		ResolveDelay: cfg.Timing.ResolveDelay,
		FlipDuration: cfg.Timing.FlipDuration,
		LoadReveal:   cfg.Timing.LoadReveal,
		ReloadReveal: cfg.Persistence.ReloadReveal,
		MatchAward:   cfg.Scoring.MatchAward,
	}
}

// DefaultSettings returns settings built from the default configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultMemoryConfig())
}

// ProgressStore persists save records.
type ProgressStore interface {
	Save(rec SaveRecord) error
	Load() (SaveRecord, error)
}

// Result is the summary of a finished or abandoned game.
type Result struct {
	RunID      string
	Score      int
	Turns      int
	Matches    int
	Rows, Cols int
	Won        bool
}

// ResultRecorder stores finished games in a history.
type ResultRecorder interface {
	RecordResult(r Result) error
}

// Option configures a Session's collaborators.
type Option func(*Session)

// WithResultRecorder records won games in r.
func WithResultRecorder(r ResultRecorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithBus publishes the session's events on b.
func WithBus(b *Bus) Option {
	return func(s *Session) { s.bus = b }
}

// WithScoreKeeper makes the session update k.
func WithScoreKeeper(k *ScoreKeeper) Option {
	return func(s *Session) { s.score = k }
}

// WithProgressStore sets where SaveAndQuit and LoadProgress read and write.
func WithProgressStore(p ProgressStore) Option {
	return func(s *Session) { s.store = p }
}

// Session is the memory game state machine.
//
// All methods must be called from a single goroutine. Time only moves when
// Update is called; delayed work is tagged with the generation that queued it
// and is discarded once StartGame, LoadProgress or SaveAndQuit bumps it.
type Session struct {
	settings Settings
	catalog  *catalog.Catalog
	rng      *rand.Rand
	bus      *Bus
	score    *ScoreKeeper
	store    ProgressStore
	recorder ResultRecorder
	sched    scheduler

	phase      Phase
	slots      []*Slot
	buffer     []int
	started    bool
	generation uint64
	rows, cols int
	runID      string
}

// NewSession creates a session in PhaseNotStarted.
func NewSession(cat *catalog.Catalog, settings Settings, opts ...Option) *Session {
	if settings.Container.W <= 0 || settings.Container.H <= 0 {
		settings.Container = LayoutSpace
	}
	if settings.ReloadReveal == "" {
		settings.ReloadReveal = config.RevealOnLoad
	}

	s := &Session{
		settings: settings,
		catalog:  cat,
		rng:      rand.New(rand.NewSource(settings.Seed)),
		rows:     settings.Rows,
		cols:     settings.Cols,
		buffer:   make([]int, 0, 2),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = NewBus()
	}
	if s.score == nil {
		s.score = NewScoreKeeper(settings.MatchAward)
	}
	return s
}

// Bus returns the event bus the session publishes on.
func (s *Session) Bus() *Bus {
	return s.bus
}

// Settings returns the session settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// SetGridSize sets the grid used by the next StartGame.
func (s *Session) SetGridSize(rows, cols int) error {
	if err := ValidateGrid(rows, cols); err != nil {
		return err
	}
	if (s.settings.MaxRows > 0 && rows > s.settings.MaxRows) || (s.settings.MaxCols > 0 && cols > s.settings.MaxCols) {
		return &InvalidGridError{Rows: rows, Cols: cols, Reason: "grid is larger than allowed"}
	}
	s.rows = rows
	s.cols = cols
	return nil
}

// StartGame deals a new game and enters PhaseShowing.
// On error the current game, if any, is left as it was.
func (s *Session) StartGame() error {
	slots, err := BuildGrid(s.rows, s.cols, s.settings.Container)
	if err != nil {
		return err
	}
	if err := Deal(slots, s.catalog, s.rng); err != nil {
		return err
	}

	s.bumpGeneration()
	s.slots = slots
	s.score.Reset()
	s.runID = newRunID()
	s.beginShowing(s.settings.ShowDuration)

	s.bus.Publish(GameInitialized{Rows: s.rows, Cols: s.cols})
	return nil
}

// ClickSlot handles a click on the slot at index.
// Clicks that cannot be honored are ignored without error.
func (s *Session) ClickSlot(index int) {
	if s.phase != PhasePlaying || !s.started {
		return
	}
	if index < 0 || index >= len(s.slots) {
		return
	}
	slot := s.slots[index]
	if !slot.InPlay() || !slot.Assigned() || slot.Revealed || slot.Turning || s.buffered(index) {
		return
	}

	slot.Revealed = true
	s.turn(slot)
	s.buffer = append(s.buffer, index)
	s.bus.Publish(CardFlipped{Slot: index, CardID: slot.CardID})

	if len(s.buffer) == 2 {
		s.resolve(s.buffer[0], s.buffer[1])
		s.buffer = s.buffer[:0]
	}
}

// Update advances session time by dt and runs due timers.
func (s *Session) Update(dt time.Duration) {
	s.sched.advance(dt, func() uint64 { return s.generation })
}

// resolve evaluates a full click buffer.
func (s *Session) resolve(a, b int) {
	first, second := s.slots[a], s.slots[b]

	tally := s.score.Turn()
	s.bus.Publish(TurnCompleted{Turns: tally.Turns})

	if first.CardID == second.CardID {
		tally = s.score.Match()
		first.Matched = true
		second.Matched = true
		s.bus.Publish(MatchSucceeded{Combo: tally.Combo, Score: tally.Score})
		s.after(s.settings.ResolveDelay, func() { s.clearPair(a, b) })
		return
	}

	tally = s.score.Mismatch()
	s.bus.Publish(MatchFailed{Combo: tally.Combo})
	s.after(s.settings.ResolveDelay, func() {
		s.hide(a)
		s.hide(b)
	})
}

// clearPair removes a matched pair and checks for the win.
func (s *Session) clearPair(a, b int) {
	s.slots[a].Removed = true
	s.slots[b].Removed = true
	s.bus.Publish(PairCleared{A: a, B: b})
	s.checkWin()
}

func (s *Session) checkWin() {
	if s.phase == PhaseWon {
		return
	}
	for _, slot := range s.slots {
		if !slot.Removed {
			return
		}
	}
	s.phase = PhaseWon
	s.started = false
	t := s.score.Tally()
	s.bus.Publish(GameWon{Score: t.Score, Turns: t.Turns})
	if err := s.record(); err != nil {
		s.bus.Publish(RecordFailed{RunID: s.runID, Err: err})
	}
}

func (s *Session) record() error {
	if s.recorder == nil || s.runID == "" {
		return nil
	}
	t := s.score.Tally()
	return s.recorder.RecordResult(Result{
		RunID:   s.runID,
		Score:   t.Score,
		Turns:   t.Turns,
		Matches: t.Matches,
		Rows:    s.rows,
		Cols:    s.cols,
		Won:     true,
	})
}

// hide turns a revealed card face down again.
func (s *Session) hide(index int) {
	slot := s.slots[index]
	if !slot.Revealed || !slot.InPlay() {
		return
	}
	slot.Revealed = false
	s.turn(slot)
	s.bus.Publish(CardHidden{Slot: index})
}

// turn marks a slot as mid-flip for the configured flip duration.
func (s *Session) turn(slot *Slot) {
	if s.settings.FlipDuration <= 0 {
		return
	}
	slot.Turning = true
	s.after(s.settings.FlipDuration, func() { slot.Turning = false })
}

// beginShowing reveals every card in play for d, then hides them and starts play.
func (s *Session) beginShowing(d time.Duration) {
	s.buffer = s.buffer[:0]
	s.started = false
	s.phase = PhaseShowing
	for _, slot := range s.slots {
		slot.Revealed = slot.InPlay()
		slot.Turning = false
	}
	s.after(d, s.endShowing)
}

func (s *Session) endShowing() {
	for _, slot := range s.slots {
		if slot.InPlay() && slot.Revealed {
			slot.Revealed = false
			s.turn(slot)
		}
	}
	s.started = true
	s.phase = PhasePlaying
	s.bus.Publish(ShowingEnded{})
}

func newRunID() string {
	return uuid.NewString()
}

// after queues fn for the current generation.
func (s *Session) after(d time.Duration, fn func()) {
	s.sched.after(d, s.generation, fn)
}

func (s *Session) bumpGeneration() {
	s.generation++
	s.sched.drop(s.generation)
	s.buffer = s.buffer[:0]
}

func (s *Session) buffered(index int) bool {
	for _, i := range s.buffer {
		if i == index {
			return true
		}
	}
	return false
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Started reports whether the reveal window has ended and clicks are accepted.
func (s *Session) Started() bool {
	return s.started
}

// Generation returns the current session generation.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Rows returns the grid rows used by StartGame.
func (s *Session) Rows() int {
	return s.rows
}

// Cols returns the grid columns used by StartGame.
func (s *Session) Cols() int {
	return s.cols
}

// RunID identifies the current game; it changes on every start or load.
func (s *Session) RunID() string {
	return s.runID
}

// Score returns the current score counters.
func (s *Session) Score() Tally {
	return s.score.Tally()
}

// Catalog returns the card catalog the session deals from.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Slots returns a copy of every slot, including removed ones.
func (s *Session) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	for i, slot := range s.slots {
		out[i] = *slot
	}
	return out
}

// Slot returns a copy of the slot at index.
func (s *Session) Slot(index int) (Slot, bool) {
	if index < 0 || index >= len(s.slots) {
		return Slot{}, false
	}
	return *s.slots[index], true
}

// Active returns the number of slots not yet cleared from the board.
func (s *Session) Active() int {
	n := 0
	for _, slot := range s.slots {
		if !slot.Removed {
			n++
		}
	}
	return n
}

// Buffer returns the slot indices clicked in the current, unresolved turn.
func (s *Session) Buffer() []int {
	out := make([]int, len(s.buffer))
	copy(out, s.buffer)
	return out
}

// PendingTimers returns the number of queued delayed callbacks.
func (s *Session) PendingTimers() int {
	return s.sched.pending()
}
