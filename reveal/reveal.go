// Package reveal implements the scroll-triggered visibility latch used by
// every page section: a section becomes visible once enough of it intersects
// the viewport, and optionally stays visible for good.
package reveal

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// ErrThreshold is returned when a threshold lies outside [0, 1].
var ErrThreshold = errors.New("reveal: threshold must be within [0, 1]")

// Options configures a Trigger.
type Options struct {
	Threshold  float64 // fraction of the element that must be visible
	RootMargin string  // CSS margin applied to the viewport, e.g. "-100px 0px"
	Once       bool    // latch visible after the first hit
}

// DefaultOptions returns threshold 0.1, root margin "0px", once false.
func DefaultOptions() Options {
	return Options{Threshold: 0.1, RootMargin: "0px"}
}

// Validate checks the threshold range.
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 || o.Threshold != o.Threshold {
		return fmt.Errorf("%w: got %v", ErrThreshold, o.Threshold)
	}
	return nil
}

// Entry is a single intersection notification for an observed element.
type Entry struct {
	Ratio        float64 // visible fraction of the element, 0..1
	Intersecting bool
}

// satisfies reports whether e crosses threshold.
func (e Entry) satisfies(threshold float64) bool {
	if threshold == 0 {
		return e.Intersecting || e.Ratio > 0
	}
	return e.Ratio >= threshold
}

// Observer delivers intersection entries for a target. The returned
// unobserve func detaches the callback.
type Observer interface {
	Observe(target string, opts Options, fn func(Entry)) (unobserve func(), err error)
}

// State is a snapshot of a trigger.
type State struct {
	Visible   bool
	Triggered bool
}

// Trigger tracks whether one element is currently on screen.
type Trigger struct {
	opts Options

	mu        sync.Mutex
	visible   bool
	triggered bool
	detach    func()
}

// New returns a Trigger for opts.
func New(opts Options) (*Trigger, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.RootMargin == "" {
		opts.RootMargin = "0px"
	}
	return &Trigger{opts: opts}, nil
}

// MustNew is like New but panics on invalid options. Intended for
// package-level section definitions.
func MustNew(opts Options) *Trigger {
	t, err := New(opts)
	if err != nil {
		panic(err)
	}
	return t
}

// Options returns the trigger configuration.
func (t *Trigger) Options() Options {
	return t.opts
}

// Visible reports whether the element currently satisfies the threshold.
func (t *Trigger) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// State returns the current visibility state.
func (t *Trigger) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{Visible: t.visible, Triggered: t.triggered}
}

// Handle applies one intersection entry.
func (t *Trigger) Handle(e Entry) {
	t.mu.Lock()
	if t.opts.Once && t.triggered {
		t.mu.Unlock()
		return
	}
	var detach func()
	if e.satisfies(t.opts.Threshold) {
		t.visible = true
		if t.opts.Once {
			t.triggered = true
			detach, t.detach = t.detach, nil
		}
	} else if !t.opts.Once {
		t.visible = false
	}
	t.mu.Unlock()

	// Outside the lock: an observer may call back into Handle while detaching.
	if detach != nil {
		detach()
	}
}

// Attach starts observing target and returns a release func for unmount.
// Release is idempotent. A nil observer, or one that fails to observe,
// leaves the element visible rather than hidden forever.
func (t *Trigger) Attach(obs Observer, target string) (release func()) {
	if obs == nil {
		t.failOpen()
		return func() {}
	}

	var once sync.Once
	unobserve, err := obs.Observe(target, t.opts, t.Handle)
	if err != nil || unobserve == nil {
		t.failOpen()
		return func() {}
	}
	stop := func() { once.Do(unobserve) }

	t.mu.Lock()
	if t.opts.Once && t.triggered {
		// Already latched by an entry delivered synchronously from Observe.
		t.mu.Unlock()
		stop()
		return stop
	}
	t.detach = stop
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		t.detach = nil
		t.mu.Unlock()
		stop()
	}
}

func (t *Trigger) failOpen() {
	t.mu.Lock()
	t.visible = true
	if t.opts.Once {
		t.triggered = true
	}
	t.mu.Unlock()
}

// Attrs returns the data attributes read by the browser runtime.
func (t *Trigger) Attrs(section string) map[string]string {
	return Attrs(section, t.opts)
}

// Attrs renders opts as data-reveal* attributes for section.
func Attrs(section string, opts Options) map[string]string {
	return map[string]string{
		"data-reveal":           section,
		"data-reveal-threshold": strconv.FormatFloat(opts.Threshold, 'f', -1, 64),
		"data-reveal-margin":    opts.RootMargin,
		"data-reveal-once":      strconv.FormatBool(opts.Once),
	}
}
