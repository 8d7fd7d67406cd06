package memory

// DefaultMatchAward is the number of points a match is worth at combo 1.
const DefaultMatchAward = 10

// Tally is the player's progress counters.
type Tally struct {
	Score   int
	Combo   int
	Matches int
	Turns   int
}

// ScoreKeeper owns the score counters of a session.
// It is constructed once and handed to the session, so the host can read the
// same instance the session updates.
type ScoreKeeper struct {
	award int
	tally Tally
}

// NewScoreKeeper creates a keeper that awards award*combo points per match.
func NewScoreKeeper(award int) *ScoreKeeper {
	if award < 0 {
		award = 0
	}
	return &ScoreKeeper{award: award}
}

// Award returns the per-match award.
func (k *ScoreKeeper) Award() int {
	return k.award
}

// Match records a successful pair: the combo grows and the score gains award*combo.
func (k *ScoreKeeper) Match() Tally {
	k.tally.Combo++
	k.tally.Score += k.award * k.tally.Combo
	k.tally.Matches++
	return k.tally
}

// Mismatch breaks the combo.
func (k *ScoreKeeper) Mismatch() Tally {
	k.tally.Combo = 0
	return k.tally
}

// Turn counts one evaluated pair, match or not.
func (k *ScoreKeeper) Turn() Tally {
	k.tally.Turns++
	return k.tally
}

// Reset zeroes all counters.
func (k *ScoreKeeper) Reset() {
	k.tally = Tally{}
}

// Restore replaces the counters with loaded progress.
func (k *ScoreKeeper) Restore(t Tally) {
	k.tally = t
}

// Tally returns the current counters.
func (k *ScoreKeeper) Tally() Tally {
	return k.tally
}

// DisplayCombo is the combo as shown to the player: a broken combo reads as 1.
func (t Tally) DisplayCombo() int {
	if t.Combo > 0 {
		return t.Combo
	}
	return 1
}
