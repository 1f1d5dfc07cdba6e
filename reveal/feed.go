package reveal

import "sync"

// Feed is an in-process Observer. Entries published for a target are
// delivered to every callback currently observing it.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(Entry)
}

// NewFeed returns an empty Feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[string]map[int]func(Entry))}
}

// Observe implements Observer.
func (f *Feed) Observe(target string, _ Options, fn func(Entry)) (func(), error) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	if f.subs[target] == nil {
		f.subs[target] = make(map[int]func(Entry))
	}
	f.subs[target][id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs[target], id)
		if len(f.subs[target]) == 0 {
			delete(f.subs, target)
		}
		f.mu.Unlock()
	}, nil
}

// Publish delivers e to the observers of target.
func (f *Feed) Publish(target string, e Entry) {
	f.mu.Lock()
	fns := make([]func(Entry), 0, len(f.subs[target]))
	for _, fn := range f.subs[target] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}

// Observers returns how many callbacks observe target.
func (f *Feed) Observers(target string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[target])
}
