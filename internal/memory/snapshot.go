package memory

// Snapshot captures the complete session state for tests and debugging.
type Snapshot struct {
	Phase      Phase
	Started    bool
	Generation uint64
	RunID      string
	Rows       int
	Cols       int
	Tally      Tally
	Buffer     []int
	Slots      []Slot
	Active     int
	Cursor     int // Set by Game; -1 for a bare session
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.phase,
		Started:    s.started,
		Generation: s.generation,
		RunID:      s.runID,
		Rows:       s.rows,
		Cols:       s.cols,
		Tally:      s.score.Tally(),
		Buffer:     s.Buffer(),
		Slots:      s.Slots(),
		Active:     s.Active(),
		Cursor:     -1,
	}
}
