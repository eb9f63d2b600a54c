// Package ui drives the terminal: title, board and game over screens
package ui

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/spectator"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/store"
)

// Screen identifies the active view
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenBoard
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenBoard:
		return "board"
	case ScreenGameOver:
		return "game over"
	}
	return "unknown"
}

// Music is the background track control the app needs
type Music interface {
	Toggle() bool
	IsPlaying() bool
}

// FramePublisher receives spectator frames, never blocking
type FramePublisher interface {
	Publish(spectator.Frame)
	Count() int
}

// App owns the screen and runs one game at a time
// All fields are touched only from the event loop goroutine
type App struct {
	screen   tcell.Screen
	store    store.ScoreStore
	music    Music
	frames   FramePublisher
	cfg      engine.Config
	log      *slog.Logger
	registry *status.Registry

	current   Screen
	game      *engine.Engine
	session   string
	cancelSub func()
	state     engine.GameState
	lastScore int
	highScore int

	closed atomic.Bool

	statGames *atomic.Int64
}

// Option customizes an App
type Option func(*App)

// WithStore sets the high score backend, an in-memory store by default
func WithStore(s store.ScoreStore) Option {
	return func(a *App) { a.store = s }
}

// WithMusic sets the background music control
func WithMusic(m Music) Option {
	return func(a *App) { a.music = m }
}

// WithFrames forwards every game state to spectators
func WithFrames(p FramePublisher) Option {
	return func(a *App) { a.frames = p }
}

// WithEngineConfig overrides the game parameters
func WithEngineConfig(cfg engine.Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithRegistry shares a metrics registry with the engines the app creates
func WithRegistry(reg *status.Registry) Option {
	return func(a *App) { a.registry = reg }
}

// NewApp creates the app on an initialized screen and loads the high score
func NewApp(screen tcell.Screen, opts ...Option) *App {
	a := &App{
		screen: screen,
		cfg:    engine.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.store == nil {
		a.store = store.NewMemoryStore()
	}
	if a.music == nil {
		a.music = &silentMusic{}
	}
	if a.log == nil {
		a.log = slog.New(slog.DiscardHandler)
	}
	if a.registry == nil {
		a.registry = status.NewRegistry()
	}
	a.statGames = a.registry.Ints.Get("ui.games_started")

	if hs, err := a.store.Load(); err != nil {
		a.log.Warn("failed to load high score", "error", err)
	} else {
		a.highScore = hs
	}
	return a
}

// Current returns the active screen
func (a *App) Current() Screen {
	return a.current
}

// Run polls screen events until the player quits or the screen is finalized
func (a *App) Run() {
	events := make(chan tcell.Event, constants.InputEventBuffer)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	a.draw()
	for ev := range events {
		if !a.HandleEvent(ev) {
			return
		}
		a.draw()
	}
}

// Close abandons any running game, safe to call more than once
func (a *App) Close() {
	if a.closed.Swap(true) {
		return
	}
	a.endGame()
}

// HandleEvent applies one event and reports whether the app keeps running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventResize:
		a.screen.Sync()

	case *EventState:
		if ev.Session == a.session && a.current == ScreenBoard {
			a.state = ev.State
		}

	case *EventGameOver:
		if ev.Session == a.session && a.current == ScreenBoard {
			a.finishGame(ev.Score)
		}
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		a.Close()
		return false
	}

	if isRune(ev, 'm') {
		a.toggleMusic()
		return true
	}

	switch a.current {
	case ScreenTitle:
		switch {
		case isConfirm(ev):
			a.startGame()
		case ev.Key() == tcell.KeyEscape, isRune(ev, 'q'):
			a.Close()
			return false
		}

	case ScreenBoard:
		if d, ok := directionForKey(ev); ok {
			a.game.EnqueueMove(d)
			return true
		}
		if ev.Key() == tcell.KeyEscape {
			a.abandonGame()
		}

	case ScreenGameOver:
		switch {
		case ev.Key() == tcell.KeyEnter:
			a.current = ScreenTitle
		case isRune(ev, 'r'):
			a.startGame()
		case ev.Key() == tcell.KeyEscape, isRune(ev, 'q'):
			a.Close()
			return false
		}
	}
	return true
}

func (a *App) toggleMusic() {
	playing := a.music.Toggle()
	a.log.Debug("music toggled", "playing", playing)
}

// startGame creates a fresh engine and wires its output into the event loop
func (a *App) startGame() {
	a.endGame()

	session := uuid.NewString()
	log := a.log.With("session", session)

	game := engine.New(a.cfg, func(score int) {
		a.post(newEventGameOver(session, score), true)
	}, engine.WithLogger(log), engine.WithRegistry(a.registry))

	a.session = session
	a.game = game
	a.state = game.State()
	a.current = ScreenBoard
	a.statGames.Add(1)

	a.cancelSub = game.Subscribe(func(s engine.GameState) {
		a.post(newEventState(session, s), false)
		if a.frames != nil {
			a.frames.Publish(spectator.NewFrame(session, s, false))
		}
	})

	game.Start()
	log.Info("game started")
}

// finishGame records the score and shows the game over screen
func (a *App) finishGame(score int) {
	a.lastScore = score

	if err := a.store.Save(score); err != nil {
		a.log.Warn("failed to save score", "session", a.session, "score", score, "error", err)
	}
	if hs, err := a.store.Load(); err != nil {
		a.log.Warn("failed to load high score", "error", err)
		a.highScore = max(a.highScore, score)
	} else {
		a.highScore = hs
	}

	a.endGame()
	a.current = ScreenGameOver
}

// abandonGame leaves the board without recording a score
func (a *App) abandonGame() {
	a.log.Info("game abandoned", "session", a.session)
	a.endGame()
	a.current = ScreenTitle
}

// endGame stops the running engine and sends the final spectator frame
func (a *App) endGame() {
	if a.game == nil {
		return
	}
	if a.cancelSub != nil {
		a.cancelSub()
		a.cancelSub = nil
	}
	a.game.Stop()

	final := a.game.State()
	if a.frames != nil {
		a.frames.Publish(spectator.NewFrame(a.session, final, true))
	}
	a.state = final
	a.game = nil
}

// post hands an event to the screen queue from any goroutine
// Events that must arrive are retried in the background when the queue is full
func (a *App) post(ev tcell.Event, mustDeliver bool) {
	if err := a.screen.PostEvent(ev); err == nil || !mustDeliver {
		return
	}
	core.Go(func() {
		ticker := time.NewTicker(constants.PostRetryInterval)
		defer ticker.Stop()
		for range ticker.C {
			if a.closed.Load() || a.screen.PostEvent(ev) == nil {
				return
			}
		}
	})
}

// silentMusic tracks the toggle state when no player is wired
type silentMusic struct {
	playing bool
}

func (m *silentMusic) Toggle() bool {
	m.playing = !m.playing
	return m.playing
}

func (m *silentMusic) IsPlaying() bool { return m.playing }
