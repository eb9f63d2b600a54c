package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// GameState is one published snapshot of the board
// Snake is head-first; published values are never mutated afterwards
type GameState struct {
	Food  core.Position
	Snake []core.Position
}

// Head returns the first segment
func (s GameState) Head() core.Position {
	return s.Snake[0]
}

// Len returns the number of materialized segments
func (s GameState) Len() int {
	return len(s.Snake)
}

// Occupies reports whether p is any segment of the snake
func (s GameState) Occupies(p core.Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// RawScore is snake length minus the initial grow budget
// Negative only during the first ticks, while the budget is still being revealed
func (s GameState) RawScore() int {
	return len(s.Snake) - constants.InitialGrowBudget
}

// Score is the displayed score, never below zero
func (s GameState) Score() int {
	return max(s.RawScore(), 0)
}

// Clone returns a deep copy
func (s GameState) Clone() GameState {
	snake := make([]core.Position, len(s.Snake))
	copy(snake, s.Snake)
	return GameState{Food: s.Food, Snake: snake}
}
