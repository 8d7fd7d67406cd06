package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// SavedCard is one card still on the board in a save record.
type SavedCard struct {
	CardID   int      `json:"cardId"`
	Size     core.Vec `json:"cardSize"`
	Position core.Vec `json:"cardPosition"`
}

// SaveRecord is the persisted progress of a game.
// It never includes the click buffer or cards that were already matched.
type SaveRecord struct {
	Score   int         `json:"score"`
	Combo   int         `json:"combo"`
	Matches int         `json:"noOfMatches"`
	Turns   int         `json:"noOfTurns"`
	Cards   []SavedCard `json:"cardsSaved"`
}

// Tally returns the counters stored in the record.
func (r SaveRecord) Tally() Tally {
	return Tally{Score: r.Score, Combo: r.Combo, Matches: r.Matches, Turns: r.Turns}
}

// Validate checks that the record describes a playable board:
// counters are non-negative and every card id is non-negative and appears
// exactly twice.
func (r SaveRecord) Validate() error {
	if r.Score < 0 || r.Combo < 0 || r.Matches < 0 || r.Turns < 0 {
		return &RecordError{Reason: "negative counter"}
	}
	counts := make(map[int]int, len(r.Cards)/2)
	for _, c := range r.Cards {
		if c.CardID < 0 {
			return &RecordError{Reason: fmt.Sprintf("card id %d is negative", c.CardID)}
		}
		if c.Size.X < 0 || c.Size.Y < 0 {
			return &RecordError{Reason: fmt.Sprintf("card %d has a negative size", c.CardID)}
		}
		counts[c.CardID]++
	}
	for id, n := range counts {
		if n != 2 {
			return &RecordError{Reason: fmt.Sprintf("card id %d appears %d times", id, n)}
		}
	}
	return nil
}

// Save flattens the cards still in play and the counters into a record.
// A pair waiting to be cleared counts as matched and is left out; a card
// revealed in an unresolved turn is saved face down.
func (s *Session) Save() SaveRecord {
	t := s.score.Tally()
	rec := SaveRecord{
		Score:   t.Score,
		Combo:   t.Combo,
		Matches: t.Matches,
		Turns:   t.Turns,
		Cards:   make([]SavedCard, 0, len(s.slots)),
	}
	for _, slot := range s.slots {
		if !slot.InPlay() || !slot.Assigned() {
			continue
		}
		rec.Cards = append(rec.Cards, SavedCard{
			CardID:   slot.CardID,
			Size:     slot.Size,
			Position: slot.Position,
		})
	}
	return rec
}

// SaveAndQuit writes the current progress and returns the session to
// PhaseNotStarted. If the write fails the game continues untouched.
// The game is not recorded in the history; a resumed game gets a new run id
// and only its win is recorded.
func (s *Session) SaveAndQuit() error {
	if s.store == nil {
		return ErrNoProgressStore
	}
	if s.phase != PhaseShowing && s.phase != PhasePlaying {
		return ErrNothingToSave
	}
	if err := s.store.Save(s.Save()); err != nil {
		return fmt.Errorf("memory: save progress: %w", err)
	}

	s.bumpGeneration()
	s.slots = nil
	s.started = false
	s.phase = PhaseNotStarted
	s.runID = ""
	return nil
}

// LoadProgress replaces the current game with the stored one.
// On failure LoadFailed is published, the error is returned and the session
// is left as it was.
func (s *Session) LoadProgress() error {
	if s.store == nil {
		s.bus.Publish(LoadFailed{Err: ErrNoProgressStore})
		return ErrNoProgressStore
	}
	rec, err := s.store.Load()
	if err != nil {
		s.bus.Publish(LoadFailed{Err: err})
		return err
	}
	if err := s.Restore(rec); err != nil {
		s.bus.Publish(LoadFailed{Err: err})
		return err
	}
	return nil
}

// Restore rebuilds the board from rec without touching the store.
func (s *Session) Restore(rec SaveRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	for _, c := range rec.Cards {
		if _, ok := s.catalog.Lookup(c.CardID); !ok {
			return &RecordError{Reason: fmt.Sprintf("card id %d is not in the catalog", c.CardID)}
		}
	}

	slots := make([]*Slot, len(rec.Cards))
	for i, c := range rec.Cards {
		slots[i] = &Slot{
			Index:    i,
			CardID:   c.CardID,
			Position: c.Position,
			Size:     c.Size,
		}
	}

	s.bumpGeneration()
	s.slots = slots
	s.score.Restore(rec.Tally())
	s.runID = newRunID()

	t := rec.Tally()
	s.bus.Publish(ProgressLoaded{Score: t.Score, Combo: t.Combo, Matches: t.Matches, Turns: t.Turns})

	if len(slots) == 0 {
		s.phase = PhasePlaying
		s.checkWin()
		return nil
	}

	switch s.settings.ReloadReveal {
	case config.RevealNever:
		for _, slot := range s.slots {
			slot.Revealed = false
		}
		s.started = true
		s.phase = PhasePlaying
	default:
		s.beginShowing(s.settings.LoadReveal)
	}
	return nil
}
