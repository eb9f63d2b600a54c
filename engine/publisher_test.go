package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestPublisherOrderedDelivery(t *testing.T) {
	p := NewPublisher(GameState{Snake: []core.Position{core.Pos(0, 0)}})

	var mu sync.Mutex
	var got []int
	p.Subscribe(func(s GameState) {
		mu.Lock()
		got = append(got, s.Head().X)
		mu.Unlock()
	})

	for x := 1; x <= 50; x++ {
		p.Publish(GameState{Snake: []core.Position{core.Pos(x, 0)}})
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 51 {
		t.Fatalf("received %d states, want 51", len(got))
	}
	for i, x := range got {
		if x != i {
			t.Fatalf("delivery %d = %d, out of order", i, x)
		}
	}
}

func TestPublisherConcurrentSubscribe(t *testing.T) {
	p := NewPublisher(GameState{Snake: []core.Position{core.Pos(0, 0)}})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for x := 1; x <= 200; x++ {
			p.Publish(GameState{Snake: []core.Position{core.Pos(x, 0)}})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			last := -1
			cancel := p.Subscribe(func(s GameState) {
				// Replay and live deliveries never go backwards
				if s.Head().X < last {
					t.Errorf("state went backwards: %d after %d", s.Head().X, last)
				}
				last = s.Head().X
			})
			cancel()
		}
	}()
	wg.Wait()

	if p.Count() != 0 {
		t.Errorf("subscribers = %d after cancel, want 0", p.Count())
	}
	if p.Latest().Head().X != 200 {
		t.Errorf("latest = %v, want x=200", p.Latest().Head())
	}
}
