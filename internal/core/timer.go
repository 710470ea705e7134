package core

import "math"

// Timer is a repeating countdown driven by elapsed simulation time.
// Unlike time.Ticker it is advanced explicitly with Tick(dt), which keeps
// the simulation deterministic and independent of wall-clock time.
type Timer struct {
	period       float64 // seconds per firing
	elapsed      float64 // accumulated seconds toward the next firing
	justFinished bool
}

// NewTimer creates a repeating timer with the given period in seconds.
// A non-positive period yields a timer that never fires.
func NewTimer(period float64) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt seconds. On the tick that crosses the
// period, JustFinished reports true until the next Tick call. If dt spans
// several periods the timer still fires once and the surplus wraps modulo
// the period, so accumulated time never reaches a full period on its own.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if t.period <= 0 || dt < 0 {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.elapsed = math.Mod(t.elapsed, t.period)
		t.justFinished = true
	}
}

// JustFinished reports whether the timer fired on the most recent Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Period returns the timer's period in seconds.
func (t *Timer) Period() float64 {
	return t.period
}

// Reset clears accumulated time and the fired flag.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
}

// Stopwatch accumulates elapsed simulation time.
type Stopwatch struct {
	elapsed float64
}

// Tick advances the stopwatch by dt seconds.
func (s *Stopwatch) Tick(dt float64) {
	if dt < 0 {
		return
	}
	s.elapsed += dt
}

// Elapsed returns the accumulated time in seconds.
func (s *Stopwatch) Elapsed() float64 {
	return s.elapsed
}

// Reset clears the accumulated time.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
}
