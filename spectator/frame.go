// Package spectator streams live game frames to read-only websocket clients
package spectator

import "github.com/lixenwraith/vi-snake/engine"

// Frame is the JSON document sent to spectators
type Frame struct {
	Session string   `json:"session"`
	Food    [2]int   `json:"food"`
	Snake   [][2]int `json:"snake"`
	Score   int      `json:"score"`
	Over    bool     `json:"over"`
}

// NewFrame converts a game state, over marks the final frame of a session
func NewFrame(session string, s engine.GameState, over bool) Frame {
	snake := make([][2]int, len(s.Snake))
	for i, p := range s.Snake {
		snake[i] = [2]int{p.X, p.Y}
	}
	return Frame{
		Session: session,
		Food:    [2]int{s.Food.X, s.Food.Y},
		Snake:   snake,
		Score:   s.Score(),
		Over:    over,
	}
}
