package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
	"golang.org/x/exp/rand"
)

// Engine runs one snake game on a fixed tick
// Board state, direction and grow budget are owned by the tick loop goroutine
// Callers interact through EnqueueMove, Subscribe, State and the lifecycle methods
type Engine struct {
	cfg Config
	log *slog.Logger
	rng *rand.Rand

	queue *InputQueue
	pub   *Publisher

	// Loop-owned
	state      GameState
	direction  core.Direction
	growBudget int

	onGameOver func(score int)
	over       atomic.Bool

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
	started  atomic.Bool

	// Cached metric pointers
	registry      *status.Registry
	statTicks     *atomic.Int64
	statFood      *atomic.Int64
	statEnqueued  *atomic.Int64
	statRejected  *atomic.Int64
	statGamesOver *atomic.Int64
	statLength    *atomic.Int64
	statRunning   *atomic.Bool
}

// New creates an engine in its initial state, the loop is not started
// onGameOver is invoked exactly once, from the loop goroutine, when the snake collides
func New(cfg Config, onGameOver func(score int), opts ...Option) *Engine {
	cfg = cfg.withDefaults()

	e := &Engine{
		cfg:        cfg,
		log:        slog.New(slog.DiscardHandler),
		queue:      NewInputQueue(),
		direction:  cfg.StartDirection,
		growBudget: constants.InitialGrowBudget,
		onGameOver: onGameOver,
		stopChan:   make(chan struct{}),
		done:       make(chan struct{}),
		registry:   status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		e.rng = rand.New(rand.NewSource(seed))
	}

	e.state = GameState{
		Food:  cfg.StartFood,
		Snake: []core.Position{cfg.StartSnake},
	}
	e.pub = NewPublisher(e.state)

	e.statTicks = e.registry.Ints.Get("engine.ticks")
	e.statFood = e.registry.Ints.Get("engine.food_eaten")
	e.statEnqueued = e.registry.Ints.Get("engine.moves_enqueued")
	e.statRejected = e.registry.Ints.Get("engine.moves_rejected")
	e.statGamesOver = e.registry.Ints.Get("engine.games_over")
	e.statLength = e.registry.Ints.Get("engine.snake_length")
	e.statRunning = e.registry.Bools.Get("engine.running")
	e.statLength.Store(int64(len(e.state.Snake)))

	return e
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// EnqueueMove appends a requested direction, never blocks on the loop
// Moves arriving after the game ended are accepted and ignored
func (e *Engine) EnqueueMove(d core.Direction) {
	if !d.Valid() {
		return
	}
	e.queue.Push(d)
	e.statEnqueued.Add(1)
}

// Subscribe registers an observer of published states
// The latest state is replayed to fn before Subscribe returns
// fn runs on the publishing goroutine and must not block or call Subscribe
func (e *Engine) Subscribe(fn func(GameState)) (cancel func()) {
	return e.pub.Subscribe(fn)
}

// State returns a copy of the latest published state
func (e *Engine) State() GameState {
	return e.pub.Latest().Clone()
}

// Running reports whether the tick loop is active
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Done is closed once the tick loop has exited, or on Stop if it never started
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Start launches the tick loop, subsequent calls are no-ops
func (e *Engine) Start() {
	if !e.started.CompareAndSwap(false, true) {
		return
	}
	e.running.Store(true)
	e.statRunning.Store(true)
	e.wg.Add(1)
	core.Go(e.loop)
	e.log.Debug("engine started", "board", e.cfg.BoardSize, "tick", e.cfg.TickInterval)
}

// Stop halts the loop without reporting a score and waits for it to exit
// Must not be called from onGameOver or a subscriber
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		e.running.Store(false)
		close(e.stopChan)
		// Never started: release Done and forbid a later Start
		if e.started.CompareAndSwap(false, true) {
			close(e.done)
		}
	})
	e.wg.Wait()
}

// loop sleeps one tick interval between steps with deadline drift correction
func (e *Engine) loop() {
	defer e.wg.Done()
	defer close(e.done)
	defer e.statRunning.Store(false)

	timer := time.NewTimer(e.cfg.TickInterval)
	defer timer.Stop()
	deadline := time.Now().Add(e.cfg.TickInterval)

	for e.running.Load() {
		select {
		case <-e.stopChan:
			return
		case <-timer.C:
		}

		if !e.running.Load() {
			return
		}
		if !e.tick() {
			return
		}

		now := time.Now()
		deadline = deadline.Add(e.cfg.TickInterval)
		if now.Sub(deadline) > e.cfg.TickInterval*2 {
			deadline = now.Add(e.cfg.TickInterval)
		}
		timer.Reset(max(deadline.Sub(now), 0))
	}
}

// tick advances the game one step, returning false once the game has ended
func (e *Engine) tick() bool {
	if e.over.Load() {
		return false
	}
	e.statTicks.Add(1)

	e.applyQueuedMove()

	newHead := e.state.Head().Add(e.direction, e.cfg.BoardSize)

	// Collision is checked against the full current body, tail included
	if e.state.Occupies(newHead) {
		e.finish(e.state.RawScore(), "collision", newHead)
		return false
	}

	food := e.state.Food
	ate := newHead == food
	if ate {
		e.growBudget++
		e.statFood.Add(1)
	}

	keep := min(len(e.state.Snake), e.growBudget-1)
	snake := make([]core.Position, 0, keep+1)
	snake = append(snake, newHead)
	snake = append(snake, e.state.Snake[:keep]...)

	if ate {
		var ok bool
		food, ok = placeFood(e.rng, e.cfg.BoardSize, snake)
		if !ok {
			next := GameState{Food: food, Snake: snake}
			e.finish(next.RawScore(), "board full", newHead)
			return false
		}
	}

	e.state = GameState{Food: food, Snake: snake}
	e.statLength.Store(int64(len(snake)))
	e.pub.Publish(e.state)
	return true
}

// applyQueuedMove drains the queue until the first non-reversing direction
// Reversals are discarded, directions behind the accepted one stay queued
func (e *Engine) applyQueuedMove() {
	for {
		d, ok := e.queue.Pop()
		if !ok {
			return
		}
		if d.IsReverseOf(e.direction) {
			e.statRejected.Add(1)
			continue
		}
		e.direction = d
		return
	}
}

// finish ends the game and reports the score once
func (e *Engine) finish(score int, reason string, at core.Position) {
	e.running.Store(false)
	if !e.over.CompareAndSwap(false, true) {
		return
	}
	e.statGamesOver.Add(1)
	e.log.Info("game over", "reason", reason, "score", score, "at", at.String())

	if e.onGameOver != nil {
		e.onGameOver(score)
	}
}
