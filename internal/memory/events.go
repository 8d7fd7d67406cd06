package memory

// Event is a signal emitted by the session for the presentation layer.
type Event interface {
	memoryEvent()
}

// GameInitialized is emitted when a new game has been dealt and cards are shown.
type GameInitialized struct {
	Rows, Cols int
}

func (GameInitialized) memoryEvent() {}

// ShowingEnded is emitted when the reveal window closes and play begins.
type ShowingEnded struct{}

func (ShowingEnded) memoryEvent() {}

// CardFlipped is emitted when a click turns a card face up.
type CardFlipped struct {
	Slot   int
	CardID int
}

func (CardFlipped) memoryEvent() {}

// CardHidden is emitted when a mismatched card is turned face down again.
type CardHidden struct {
	Slot int
}

func (CardHidden) memoryEvent() {}

// TurnCompleted is emitted once per evaluated pair.
type TurnCompleted struct {
	Turns int
}

func (TurnCompleted) memoryEvent() {}

// MatchSucceeded is emitted when both buffered cards share an id.
type MatchSucceeded struct {
	Combo int
	Score int
}

func (MatchSucceeded) memoryEvent() {}

// MatchFailed is emitted on a mismatch. Combo is always 0.
type MatchFailed struct {
	Combo int
}

func (MatchFailed) memoryEvent() {}

// PairCleared is emitted when a matched pair leaves the board.
type PairCleared struct {
	A, B int
}

func (PairCleared) memoryEvent() {}

// GameWon is emitted once, when the last pair leaves the board.
type GameWon struct {
	Score int
	Turns int
}

func (GameWon) memoryEvent() {}

// ProgressLoaded is emitted after a save has been restored.
type ProgressLoaded struct {
	Score   int
	Combo   int
	Matches int
	Turns   int
}

func (ProgressLoaded) memoryEvent() {}

// LoadFailed is emitted when no usable save could be read.
type LoadFailed struct {
	Err error
}

func (LoadFailed) memoryEvent() {}

// RecordFailed is emitted when a won game could not be written to the history.
// The win itself stands.
type RecordFailed struct {
	RunID string
	Err   error
}

func (RecordFailed) memoryEvent() {}

// Handler receives events.
type Handler func(Event)

type subscription struct {
	id int
	h  Handler
}

// Bus delivers events to subscribers synchronously, in subscription order.
// It is not safe for concurrent use; a bus belongs to one session goroutine.
type Bus struct {
	subs   []subscription
	nextID int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns a function that removes it.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, h: h})

	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every subscriber.
func (b *Bus) Publish(e Event) {
	subs := b.subs
	for _, s := range subs {
		s.h(e)
	}
}
