package system

import "time"

// StepClock paces discrete snake steps independently of the frame rate.
//
// Elapsed time accumulates until it reaches the interval; the step then
// fires and the accumulator drops back to zero. Time beyond the interval is
// discarded rather than carried into the next step.
type StepClock struct {
	interval    time.Duration
	initial     time.Duration
	speedupStep time.Duration
	floor       time.Duration
	accumulated time.Duration
}

// NewStepClock creates a clock starting at initial, shortened by step on each
// Speedup but never below floor.
func NewStepClock(initial, step, floor time.Duration) *StepClock {
	return &StepClock{
		interval:    initial,
		initial:     initial,
		speedupStep: step,
		floor:       floor,
	}
}

// Advance adds dt and reports whether a step is due
func (c *StepClock) Advance(dt time.Duration) bool {
	c.accumulated += dt
	if c.accumulated < c.interval {
		return false
	}
	c.accumulated = 0
	return true
}

// Speedup shortens the interval, clamped to the floor
func (c *StepClock) Speedup() {
	c.interval -= c.speedupStep
	if c.interval < c.floor {
		c.interval = c.floor
	}
}

// Reset restores the initial interval and clears accumulated time
func (c *StepClock) Reset() {
	c.interval = c.initial
	c.accumulated = 0
}

// Restart clears accumulated time but keeps the current interval
func (c *StepClock) Restart() {
	c.accumulated = 0
}

// Interval returns the current step interval
func (c *StepClock) Interval() time.Duration {
	return c.interval
}

// Accumulated returns the time gathered toward the next step
func (c *StepClock) Accumulated() time.Duration {
	return c.accumulated
}
