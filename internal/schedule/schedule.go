// Package schedule provides delayed fire-and-forget tasks with explicit
// cancellation, replacing ad hoc sleep-then-act goroutines.
package schedule

import (
	"sync"
	"time"
)

// Task is a pending delayed action
type Task struct {
	timer *time.Timer

	mu       sync.Mutex
	done     bool
	canceled bool
}

// After runs fn once after delay, unless the task is canceled first
func After(delay time.Duration, fn func()) *Task {
	t := &Task{}
	t.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		if t.canceled {
			t.mu.Unlock()
			return
		}
		t.done = true
		t.mu.Unlock()
		fn()
	})
	return t
}

// Cancel stops the task. It reports whether the cancellation happened before
// the task ran.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done || t.canceled {
		return false
	}
	t.canceled = true
	t.timer.Stop()
	return true
}

// Done reports whether the task has already run
func (t *Task) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}
