package reminder

import (
	"sync"
	"time"

	"github.com/habitta-app/habitta/internal/logging"
)

// Applier delivers a plan. Apply replaces everything pending from an earlier
// plan; stale entries must never fire.
type Applier interface {
	Apply(entries []Entry) error
	CancelAll()
}

// Deliverer presents a single notification to the user.
type Deliverer func(title, body string)

// TimerApplier fires plan entries with in-process timers. It backs the watch
// mode where the process stays alive; anything pending dies with it.
type TimerApplier struct {
	deliver Deliverer
	mu      sync.Mutex
	timers  []*time.Timer
}

// NewTimerApplier creates an applier delivering through the given function.
func NewTimerApplier(deliver Deliverer) *TimerApplier {
	return &TimerApplier{deliver: deliver}
}

// Apply cancels all pending timers and arms one per entry.
func (a *TimerApplier) Apply(entries []Entry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()
	now := time.Now()
	for _, e := range entries {
		delay := e.At.Sub(now)
		if delay < 0 {
			continue
		}
		entry := e
		a.timers = append(a.timers, time.AfterFunc(delay, func() {
			a.deliver(entry.Title, entry.Body)
		}))
	}
	logging.DebugLog("reminder plan applied", logging.KeyCount, len(entries))
	return nil
}

// CancelAll stops every pending timer.
func (a *TimerApplier) CancelAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
}

func (a *TimerApplier) cancelLocked() {
	for _, t := range a.timers {
		t.Stop()
	}
	a.timers = nil
}
