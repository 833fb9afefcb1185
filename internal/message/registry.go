package message

import "sync"

// Registry hands out one Display per browser profile. A display is dropped
// once nobody holds it and it has no text, timer or subscriber left.
type Registry struct {
	clock Clock

	mu       sync.Mutex
	displays map[string]*entry
}

type entry struct {
	display *Display
	refs    int
}

// NewRegistry returns an empty registry whose displays schedule on clock.
func NewRegistry(clock Clock) *Registry {
	return &Registry{clock: clock, displays: make(map[string]*entry)}
}

// Acquire returns the display of profileID, creating it on first use. The
// caller must call release when it is done with the display.
func (r *Registry) Acquire(profileID string) (d *Display, release func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.displays[profileID]
	if !ok {
		nd := NewDisplay(r.clock)
		nd.onIdle = func() { r.dropIfIdle(profileID, nd) }
		e = &entry{display: nd}
		r.displays[profileID] = e
	}
	e.refs++

	var once sync.Once
	return e.display, func() {
		once.Do(func() { r.release(profileID, e) })
	}
}

// Len returns the number of displays currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.displays)
}

func (r *Registry) release(profileID string, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.refs--
	if e.refs == 0 && r.displays[profileID] == e && e.display.idle() {
		delete(r.displays, profileID)
	}
}

func (r *Registry) dropIfIdle(profileID string, d *Display) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.displays[profileID]
	if ok && e.display == d && e.refs == 0 && d.idle() {
		delete(r.displays, profileID)
	}
}
