package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// runeDirections maps vi and wasd keys to moves
var runeDirections = map[rune]core.Direction{
	'h': core.Left,
	'j': core.Down,
	'k': core.Up,
	'l': core.Right,
	'a': core.Left,
	's': core.Down,
	'w': core.Up,
	'd': core.Right,
}

// directionForKey translates a key press into a move, ok is false for other keys
func directionForKey(ev *tcell.EventKey) (core.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.Up, true
	case tcell.KeyDown:
		return core.Down, true
	case tcell.KeyLeft:
		return core.Left, true
	case tcell.KeyRight:
		return core.Right, true
	case tcell.KeyRune:
		d, ok := runeDirections[ev.Rune()]
		return d, ok
	}
	return core.Direction{}, false
}

// isRune reports whether ev is the plain rune r
func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}

// isConfirm matches Enter and Space
func isConfirm(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || isRune(ev, ' ')
}
