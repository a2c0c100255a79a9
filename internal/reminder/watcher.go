package reminder

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/storage"
	"github.com/habitta-app/habitta/internal/streak"
)

// Watcher keeps the applied notification plan in sync with the store. It
// replans when habits or todos change and at every day rollover, on a
// minute tick.
type Watcher struct {
	habits  *storage.HabitRepo
	todos   *storage.TodoRepo
	applier Applier
	granted bool

	cron    *cron.Cron
	mu      sync.Mutex
	dirty   bool
	planDay time.Time
}

// NewWatcher creates a watcher. The granted flag mirrors the platform
// notification permission; when false the applied plan is always empty.
func NewWatcher(habits *storage.HabitRepo, todos *storage.TodoRepo, applier Applier, granted bool) *Watcher {
	return &Watcher{
		habits:  habits,
		todos:   todos,
		applier: applier,
		granted: granted,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start applies the initial plan, subscribes to store changes and begins the
// minute tick.
func (w *Watcher) Start(store *storage.Store) error {
	if err := w.replan(time.Now()); err != nil {
		return err
	}

	store.Subscribe(func(key string) {
		if key != model.KeyHabits && key != model.KeyTodos {
			return
		}
		w.mu.Lock()
		w.dirty = true
		w.mu.Unlock()
	})

	_, err := w.cron.AddFunc("0 * * * * *", w.tick)
	if err != nil {
		return errors.NewSystemError("failed to schedule reminder tick", err)
	}
	w.cron.Start()
	return nil
}

// Stop halts the tick and cancels everything pending.
func (w *Watcher) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.applier.CancelAll()
}

// tick replans when state changed since the last plan or the day rolled over.
func (w *Watcher) tick() {
	now := time.Now()

	w.mu.Lock()
	day := streak.Day(now)
	needsPlan := w.dirty || !day.Equal(w.planDay)
	w.mu.Unlock()

	if !needsPlan {
		return
	}
	if err := w.replan(now); err != nil {
		logging.Warn("reminder replan failed", logging.KeyError, err)
	}
}

func (w *Watcher) replan(now time.Time) error {
	habits := w.habits.List()
	todos := w.todos.List()
	entries := Desired(habits, todos, w.granted, now)

	if err := w.applier.Apply(entries); err != nil {
		return err
	}

	w.mu.Lock()
	w.dirty = false
	w.planDay = streak.Day(now)
	w.mu.Unlock()

	logging.DebugLog("reminder plan refreshed", logging.KeyCount, len(entries))
	return nil
}
