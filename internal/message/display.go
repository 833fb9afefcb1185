// Package message implements the cart page status line: a single text with a
// debounced clear timer and a standing override set by a completed order.
package message

import (
	"sync"
	"time"
)

// Display owns the status text, the pending clear timer and the standing flag.
type Display struct {
	clock Clock

	mu        sync.Mutex
	text      string
	standing  bool
	timer     Timer
	timerGen  uint64
	listeners map[uint64]func(string)
	nextID    uint64

	// onIdle runs after a timer clears the text, outside the lock.
	onIdle func()
}

// NewDisplay returns an empty display scheduling on clock. A nil clock uses
// the system clock.
func NewDisplay(clock Clock) *Display {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Display{clock: clock, listeners: make(map[uint64]func(string))}
}

// Show replaces the text and cancels any pending clear. With d > 0 the text
// is cleared after d unless a standing message has been set by then.
// Show always ends a previous standing state.
func (d *Display) Show(text string, after time.Duration) {
	d.mu.Lock()
	d.standing = false
	d.stopTimerLocked()
	d.text = text
	if after > 0 {
		gen := d.timerGen
		d.timer = d.clock.AfterFunc(after, func() { d.expire(gen) })
	}
	d.notifyLocked()
	d.mu.Unlock()
}

// Stand sets a standing message. It is not cleared by a timer that is
// already pending.
func (d *Display) Stand(text string) {
	d.mu.Lock()
	d.standing = true
	d.text = text
	d.notifyLocked()
	d.mu.Unlock()
}

// Clear cancels any pending clear and empties the text.
func (d *Display) Clear() {
	d.mu.Lock()
	d.stopTimerLocked()
	d.text = ""
	d.notifyLocked()
	d.mu.Unlock()
}

// Reset is called on page entry: it drops the standing state and clears.
func (d *Display) Reset() {
	d.mu.Lock()
	d.standing = false
	d.mu.Unlock()
	d.Clear()
}

// Text returns the current status text.
func (d *Display) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Standing reports whether a standing message is shown.
func (d *Display) Standing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.standing
}

// pending reports whether a clear is scheduled.
func (d *Display) pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// idle reports whether the display holds nothing worth keeping.
func (d *Display) idle() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text == "" && !d.standing && d.timer == nil && len(d.listeners) == 0
}

// Subscribe registers fn to receive every text change, in order. fn runs with
// the display locked, possibly on a timer goroutine, so it must not block or
// call back into the display. The returned func removes it.
func (d *Display) Subscribe(fn func(text string)) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}

func (d *Display) expire(gen uint64) {
	d.mu.Lock()
	// A timer that lost the race with Stop belongs to an older message.
	if gen != d.timerGen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.timerGen++
	if d.standing {
		d.mu.Unlock()
		return
	}
	d.text = ""
	d.notifyLocked()
	onIdle := d.onIdle
	d.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
}

func (d *Display) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.timerGen++
}

func (d *Display) notifyLocked() {
	for _, fn := range d.listeners {
		fn(d.text)
	}
}
