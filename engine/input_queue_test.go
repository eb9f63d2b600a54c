package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestInputQueueFIFO(t *testing.T) {
	q := NewInputQueue()

	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue returned ok")
	}

	in := []core.Direction{core.Up, core.Left, core.Down, core.Right, core.Up}
	for _, d := range in {
		q.Push(d)
	}
	if q.Len() != len(in) {
		t.Fatalf("len = %d, want %d", q.Len(), len(in))
	}

	for i, want := range in {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("pop %d = %v,%v want %v", i, got, ok, want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("len after drain = %d", q.Len())
	}

	// Reuse after drain
	q.Push(core.Down)
	if d, ok := q.Pop(); !ok || d != core.Down {
		t.Errorf("pop after reuse = %v,%v", d, ok)
	}
}

func TestInputQueueInterleaved(t *testing.T) {
	q := NewInputQueue()
	q.Push(core.Up)
	q.Push(core.Down)
	q.Pop()
	q.Push(core.Left)

	want := []core.Direction{core.Down, core.Left}
	for _, w := range want {
		if d, _ := q.Pop(); d != w {
			t.Errorf("pop = %v, want %v", d, w)
		}
	}
}
