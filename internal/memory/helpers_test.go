package memory

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/catalog"
	"github.com/vovakirdan/tui-memory/internal/config"
)

func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	entries := make([]catalog.Entry, n)
	for i := range entries {
		entries[i] = catalog.Entry{ID: i, Image: fmt.Sprintf("%c", 'A'+i%26), Name: fmt.Sprintf("card %d", i)}
	}
	cat, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func testSettings(rows, cols int) Settings {
	return Settings{
		Rows:         rows,
		Cols:         cols,
		MaxRows:      8,
		MaxCols:      8,
		Container:    LayoutSpace,
		ShowDuration: time.Second,
		ResolveDelay: 500 * time.Millisecond,
		FlipDuration: 100 * time.Millisecond,
		LoadReveal:   time.Second,
		ReloadReveal: config.RevealOnLoad,
		MatchAward:   DefaultMatchAward,
		Seed:         42,
	}
}

// recorder collects every event published on a bus.
type recorder struct {
	events []Event
}

func (r *recorder) handle(e Event) {
	r.events = append(r.events, e)
}

func count[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

// memStore is an in-memory ProgressStore.
type memStore struct {
	rec     *SaveRecord
	saveErr error
}

func (m *memStore) Save(rec SaveRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rec = &rec
	return nil
}

var errNoSave = errors.New("no save")

func (m *memStore) Load() (SaveRecord, error) {
	if m.rec == nil {
		return SaveRecord{}, errNoSave
	}
	return *m.rec, nil
}

// resultLog is an in-memory ResultRecorder.
type resultLog struct {
	results []Result
	err     error
}

func (l *resultLog) RecordResult(r Result) error {
	if l.err != nil {
		return l.err
	}
	l.results = append(l.results, r)
	return nil
}

// playing starts a game and waits out the reveal window and the flip back.
func playing(t *testing.T, s *Session) {
	t.Helper()
	if err := s.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	s.Update(s.settings.ShowDuration)
	s.Update(s.settings.FlipDuration)
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase())
	}
}

// pairs groups in-play slot indices by card id, in slot order of first appearance.
func pairs(s *Session) [][2]int {
	seen := map[int]int{}
	var out [][2]int
	for _, slot := range s.Slots() {
		if !slot.InPlay() {
			continue
		}
		if j, ok := seen[slot.CardID]; ok {
			out = append(out, [2]int{j, slot.Index})
			continue
		}
		seen[slot.CardID] = slot.Index
	}
	return out
}
