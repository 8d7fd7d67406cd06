package memory

import "time"

// timer is a delayed callback owned by one session generation.
type timer struct {
	due time.Duration
	seq uint64
	gen uint64
	fn  func()
}

// scheduler is a single-threaded timer queue driven by explicit time steps.
// Nothing fires between calls to advance.
type scheduler struct {
	now    time.Duration
	seq    uint64
	timers []timer
}

// after queues fn to run d after the current time, tagged with gen.
func (s *scheduler) after(d time.Duration, gen uint64, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.timers = append(s.timers, timer{due: s.now + d, seq: s.seq, gen: gen, fn: fn})
}

// advance moves time forward by dt and runs every due timer in due order.
// Timers whose generation differs from current() at fire time are dropped.
// Timers queued by a callback fire in the same call if they are already due.
func (s *scheduler) advance(dt time.Duration, current func() uint64) {
	if dt > 0 {
		s.now += dt
	}
	for {
		i := s.nextDue()
		if i < 0 {
			return
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		if t.gen == current() {
			t.fn()
		}
	}
}

// nextDue returns the index of the earliest due timer, or -1.
func (s *scheduler) nextDue() int {
	best := -1
	for i, t := range s.timers {
		if t.due > s.now {
			continue
		}
		if best < 0 || t.due < s.timers[best].due || (t.due == s.timers[best].due && t.seq < s.timers[best].seq) {
			best = i
		}
	}
	return best
}

// drop discards every timer not belonging to gen.
func (s *scheduler) drop(gen uint64) {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.gen == gen {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = timer{}
	}
	s.timers = kept
}

// pending returns the number of queued timers.
func (s *scheduler) pending() int {
	return len(s.timers)
}
