package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// EventState carries a published game state into the screen event loop
type EventState struct {
	tcell.EventTime
	Session string
	State   engine.GameState
}

// EventGameOver reports the end of a game to the screen event loop
type EventGameOver struct {
	tcell.EventTime
	Session string
	Score   int
}

func newEventState(session string, s engine.GameState) *EventState {
	ev := &EventState{Session: session, State: s}
	ev.SetEventNow()
	return ev
}

func newEventGameOver(session string, score int) *EventGameOver {
	ev := &EventGameOver{Session: session, Score: score}
	ev.SetEventNow()
	return ev
}
