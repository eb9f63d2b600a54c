package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"golang.org/x/exp/rand"
)

// placeFood picks a uniformly random cell not covered by snake
// Returns false when the snake covers the whole board
func placeFood(rng *rand.Rand, size int, snake []core.Position) (core.Position, bool) {
	occupied := make(map[core.Position]struct{}, len(snake))
	for _, seg := range snake {
		occupied[seg] = struct{}{}
	}
	if len(occupied) >= size*size {
		return core.Position{}, false
	}

	// Rejection sampling terminates: at least one free cell exists
	for {
		p := core.Pos(rng.Intn(size), rng.Intn(size))
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}
}
