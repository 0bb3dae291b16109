package listing

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay between the last keystroke and the
// recomputation it triggers. A responsiveness knob, not a correctness
// requirement: calling the function directly is always valid.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces rapid calls into one trailing-edge invocation of
// fn after the delay has passed without another call.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn, replacing any previously scheduled call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
