package ui

import (
	"sync"
	"time"
)

const (
	progressStep    = 2
	progressCeiling = 90

	// DefaultRampTime is how long the ramp takes to reach the ceiling.
	DefaultRampTime = 3000 * time.Millisecond
)

// ProgressController drives the cosmetic progress ramp: fixed ticks of 2
// percentage points up to 90, then hold. It never reaches 100 on its own;
// Finish and Reset are driven externally once the real request settles.
//
// At most one ramp runs at a time: Start supersedes a previous ramp
// before launching a new one. The ramp goroutine only touches the
// percent counter, so it can never gate the real request.
type ProgressController struct {
	interval time.Duration
	onTick   func(percent int)

	mu      sync.Mutex
	percent int
	stop    chan struct{}
	done    chan struct{}
}

// NewProgressController builds a controller whose ramp spans rampTime.
// onTick, if non-nil, is called with the new value after every increment.
func NewProgressController(rampTime time.Duration, onTick func(percent int)) *ProgressController {
	steps := progressCeiling / progressStep
	return &ProgressController{
		interval: rampTime / time.Duration(steps),
		onTick:   onTick,
	}
}

// Start resets the indicator to 0 and begins a fresh ramp, stopping any
// ramp still running from a previous submission.
func (p *ProgressController) Start() {
	p.halt()

	p.mu.Lock()
	p.percent = 0
	stop := make(chan struct{})
	done := make(chan struct{})
	p.stop, p.done = stop, done
	p.mu.Unlock()

	go p.run(stop, done)
}

// Finish stops the ramp and snaps the indicator to 100.
func (p *ProgressController) Finish() {
	p.halt()

	p.mu.Lock()
	p.percent = 100
	p.mu.Unlock()
}

// Reset stops the ramp and zeroes the indicator.
func (p *ProgressController) Reset() {
	p.halt()

	p.mu.Lock()
	p.percent = 0
	p.mu.Unlock()
}

// Percent returns the current indicator value.
func (p *ProgressController) Percent() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.percent
}

// run ticks the counter up to the ceiling, then exits and holds there.
func (p *ProgressController) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.percent >= progressCeiling {
				p.mu.Unlock()
				return
			}
			p.percent += progressStep
			value := p.percent
			p.mu.Unlock()

			if p.onTick != nil {
				p.onTick(value)
			}
		}
	}
}

// halt stops the active ramp, if any, and waits for its goroutine to
// exit so a later reset cannot race a leftover tick.
func (p *ProgressController) halt() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}
