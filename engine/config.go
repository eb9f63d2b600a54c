package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
	"golang.org/x/exp/rand"
)

// Config holds the fixed parameters of one game
type Config struct {
	BoardSize      int
	TickInterval   time.Duration
	StartFood      core.Position
	StartSnake     core.Position
	StartDirection core.Direction

	// Seed for food placement, 0 seeds from the clock
	Seed uint64
}

// DefaultConfig returns the standard 16x16, 150ms game
func DefaultConfig() Config {
	return Config{
		BoardSize:      constants.BoardSize,
		TickInterval:   constants.TickInterval,
		StartFood:      core.Pos(constants.StartFoodX, constants.StartFoodY),
		StartSnake:     core.Pos(constants.StartSnakeX, constants.StartSnakeY),
		StartDirection: core.Direction{X: constants.StartDirectionX, Y: constants.StartDirectionY},
	}
}

// withDefaults replaces unusable fields with playable values
// Boards smaller than the initial grow budget let a short snake bite its own tail,
// so they fall back to the default size
// Start positions outside the board or on top of each other are replaced as a pair
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BoardSize < constants.InitialGrowBudget {
		c.BoardSize = def.BoardSize
	}
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
	if !c.StartDirection.Valid() {
		c.StartDirection = def.StartDirection
	}
	if !startValid(c.StartFood, c.StartSnake, c.BoardSize) {
		c.StartFood, c.StartSnake = def.StartFood, def.StartSnake
		if !startValid(c.StartFood, c.StartSnake, c.BoardSize) {
			half := c.BoardSize / 2
			c.StartSnake = core.Pos(half, half)
			c.StartFood = core.Pos(half/2, half/2)
		}
	}
	return c
}

func startValid(food, snake core.Position, size int) bool {
	return food != snake && food.InBounds(size) && snake.InBounds(size)
}

// Option customizes an Engine at construction
type Option func(*Engine)

// WithRegistry publishes engine metrics into reg
func WithRegistry(reg *status.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// WithLogger sets the structured logger, discarded by default
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRandSource overrides the food placement source
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = rand.New(src)
		}
	}
}
