package engine

import (
	"sort"
	"sync"
)

// Publisher holds the current GameState and fans it out to observers
// New subscribers immediately receive the latest value
type Publisher struct {
	// deliver serializes publication and replay so every observer sees states in order
	deliver sync.Mutex

	mu     sync.Mutex
	latest GameState
	subs   map[uint64]func(GameState)
	nextID uint64
}

// NewPublisher creates a publisher seeded with initial
func NewPublisher(initial GameState) *Publisher {
	return &Publisher{
		latest: initial,
		subs:   make(map[uint64]func(GameState)),
	}
}

// Publish stores s as the latest value and notifies every observer
// Observers run on the caller's goroutine and must not call Subscribe
func (p *Publisher) Publish(s GameState) {
	p.deliver.Lock()
	defer p.deliver.Unlock()

	p.mu.Lock()
	p.latest = s
	fns := p.snapshotLocked()
	p.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Subscribe registers fn, replays the latest value to it and returns a cancel func
func (p *Publisher) Subscribe(fn func(GameState)) (cancel func()) {
	p.deliver.Lock()
	defer p.deliver.Unlock()

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	latest := p.latest
	p.mu.Unlock()

	fn(latest)

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// Latest returns the most recently published state
func (p *Publisher) Latest() GameState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// Count returns the number of active observers
func (p *Publisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

// snapshotLocked returns observers in subscription order
func (p *Publisher) snapshotLocked() []func(GameState) {
	ids := make([]uint64, 0, len(p.subs))
	for id := range p.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fns := make([]func(GameState), len(ids))
	for i, id := range ids {
		fns[i] = p.subs[id]
	}
	return fns
}
