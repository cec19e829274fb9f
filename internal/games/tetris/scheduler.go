package tetris

import "time"

// Scheduler is the drop timer. It accumulates elapsed time and reports how
// many gravity ticks fell due. The owner feeds it time through Advance, so
// every tick runs on the owner's goroutine.
type Scheduler struct {
	interval time.Duration
	elapsed  time.Duration
	armed    bool
}

// NewScheduler returns a disarmed scheduler with the given interval.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval}
}

// Interval returns the current tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// SetInterval changes the interval for the ticks that follow. Time already
// accumulated toward the next tick is kept.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.interval = d
}

// Arm starts a fresh interval.
func (s *Scheduler) Arm() {
	s.elapsed = 0
	s.armed = true
}

// Disarm cancels the pending tick.
func (s *Scheduler) Disarm() {
	s.elapsed = 0
	s.armed = false
}

// Armed reports whether the scheduler is counting.
func (s *Scheduler) Armed() bool {
	return s.armed
}

// Advance adds dt to the elapsed time and returns the number of ticks that
// became due. A disarmed scheduler never fires.
func (s *Scheduler) Advance(dt time.Duration) int {
	if !s.armed || dt <= 0 || s.interval <= 0 {
		return 0
	}
	s.elapsed += dt
	n := 0
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		n++
	}
	return n
}
