// Package config resolves runtime settings from defaults, a TOML file, the environment and flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Store backends
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config is the full runtime configuration
type Config struct {
	Game      Game      `toml:"game"`
	Audio     Audio     `toml:"audio"`
	Store     Store     `toml:"store"`
	Spectator Spectator `toml:"spectator"`
	Log       Log       `toml:"log"`
}

// Game holds engine parameters, the shipped binary keeps the defaults
type Game struct {
	BoardSize    int           `toml:"board_size"`
	TickInterval time.Duration `toml:"tick_interval"`
	StartFood    [2]int        `toml:"start_food"`
	StartSnake   [2]int        `toml:"start_snake"`
	Seed         uint64        `toml:"seed"`
}

// Audio controls background music
type Audio struct {
	// Music starts the track on the title screen
	Music bool `toml:"music"`
	// File is an optional WAV track, empty selects the generated loop
	File string `toml:"file"`
}

// Store selects the high score backend
type Store struct {
	Backend     string `toml:"backend"`
	Path        string `toml:"path"`
	DatabaseURL string `toml:"database_url"`
}

// Spectator configures the read-only websocket feed, empty Addr disables it
type Spectator struct {
	Addr string `toml:"addr"`
}

// Log configures file logging
type Log struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: Game{
			BoardSize:    constants.BoardSize,
			TickInterval: constants.TickInterval,
			StartFood:    [2]int{constants.StartFoodX, constants.StartFoodY},
			StartSnake:   [2]int{constants.StartSnakeX, constants.StartSnakeY},
		},
		Store: Store{
			Backend: BackendJSON,
			Path:    constants.DefaultStoreFile,
		},
		Log: Log{
			Dir: constants.LogDir,
		},
	}
}

// LoadFile overlays the TOML file at path onto cfg
// Keys absent from the file keep their current values
func LoadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalid, path, undecoded)
	}
	return nil
}

// ApplyEnv overlays recognized environment variables read through getenv
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv("SNAKE_STORE"); v != "" {
		cfg.Store.Backend = v
	}
	if v := getenv("SNAKE_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		cfg.Store.DatabaseURL = v
	}
	if v := getenv("SNAKE_SPECTATOR_ADDR"); v != "" {
		cfg.Spectator.Addr = v
	}
	if v := getenv("SNAKE_MUSIC_FILE"); v != "" {
		cfg.Audio.File = v
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_SEED %q: %v", ErrInvalid, v, err)
		}
		cfg.Game.Seed = seed
	}
	return nil
}

// Validate reports the first inconsistent setting
func (c Config) Validate() error {
	g := c.Game
	// A snake shorter than the grow budget must not reach its own tail
	if g.BoardSize < constants.InitialGrowBudget {
		return fmt.Errorf("%w: board_size must be at least %d, got %d",
			ErrInvalid, constants.InitialGrowBudget, g.BoardSize)
	}
	if g.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalid, g.TickInterval)
	}

	food, snake := g.foodPos(), g.snakePos()
	if !food.InBounds(g.BoardSize) {
		return fmt.Errorf("%w: start_food %s outside %dx%d board", ErrInvalid, food, g.BoardSize, g.BoardSize)
	}
	if !snake.InBounds(g.BoardSize) {
		return fmt.Errorf("%w: start_snake %s outside %dx%d board", ErrInvalid, snake, g.BoardSize, g.BoardSize)
	}
	if food == snake {
		return fmt.Errorf("%w: start_food and start_snake overlap at %s", ErrInvalid, food)
	}

	switch c.Store.Backend {
	case BackendJSON:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: json store requires a path", ErrInvalid)
		}
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("%w: postgres store requires database_url", ErrInvalid)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalid, c.Store.Backend)
	}
	return nil
}

// EngineConfig converts the game section into engine parameters
func (g Game) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.BoardSize = g.BoardSize
	cfg.TickInterval = g.TickInterval
	cfg.StartFood = g.foodPos()
	cfg.StartSnake = g.snakePos()
	cfg.Seed = g.Seed
	return cfg
}

func (g Game) foodPos() core.Position {
	return core.Pos(g.StartFood[0], g.StartFood[1])
}

func (g Game) snakePos() core.Position {
	return core.Pos(g.StartSnake[0], g.StartSnake[1])
}
