package ui

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestProgressController_RampsToCeilingAndHolds(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProgressController(50*time.Millisecond, nil)

	p.Start()
	defer p.Reset()

	// Ramp finishes well within this window, then must hold at 90.
	assert.Eventually(t, func() bool {
		return p.Percent() == 90
	}, time.Second, 2*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 90, p.Percent())
}

func TestProgressController_NeverExceedsCeiling(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	seen := []int{}

	p := NewProgressController(30*time.Millisecond, func(percent int) {
		mu.Lock()
		seen = append(seen, percent)
		mu.Unlock()
	})

	p.Start()
	time.Sleep(100 * time.Millisecond)
	p.Reset()

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, seen)
	for _, percent := range seen {
		assert.LessOrEqual(t, percent, 90)
	}

	// Ticks are monotone within a single ramp
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}
}

func TestProgressController_StartResetsToZero(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProgressController(time.Hour, nil)

	p.Start()
	p.Finish()
	assert.Equal(t, 100, p.Percent())

	// A new submission starts from scratch, no carryover.
	p.Start()
	assert.Equal(t, 0, p.Percent())
	p.Reset()
	assert.Equal(t, 0, p.Percent())
}

func TestProgressController_StartSupersedesPreviousRamp(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProgressController(20*time.Millisecond, nil)

	// Restarting repeatedly must never leave a second ramp running;
	// goleak catches any orphaned ticker goroutine.
	for i := 0; i < 5; i++ {
		p.Start()
		time.Sleep(5 * time.Millisecond)
	}
	p.Reset()

	assert.Equal(t, 0, p.Percent())
}

func TestProgressController_FinishSnapsTo100(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProgressController(50*time.Millisecond, nil)

	p.Start()
	time.Sleep(10 * time.Millisecond)
	p.Finish()

	assert.Equal(t, 100, p.Percent())
}
