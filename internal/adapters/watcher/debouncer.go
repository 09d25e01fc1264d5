package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid file system events into one callback.
type Debouncer struct {
	mu       sync.Mutex
	pending  bool
	timer    *time.Timer
	window   time.Duration
	callback func()
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger records an event and restarts the debounce window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	// Check if there's anything to process (protects against race with Flush).
	if !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Flush runs a pending callback immediately and blocks until it completes.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if pending && d.callback != nil {
		d.callback()
	}
}

// Stop drops a pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}
