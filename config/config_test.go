package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return f
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	ec := cfg.Game.EngineConfig()
	if ec.BoardSize != 16 || ec.TickInterval != 150*time.Millisecond {
		t.Errorf("engine config = %+v", ec)
	}
	if ec.StartFood != core.Pos(5, 5) || ec.StartSnake != core.Pos(7, 7) {
		t.Errorf("start positions = %v %v", ec.StartFood, ec.StartSnake)
	}
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, `
[store]
backend = "memory"
path = "from-file.json"

[spectator]
addr = ":7000"

[audio]
music = true
`)

	env := envMap(map[string]string{
		"SNAKE_STORE_PATH":     "from-env.json",
		"SNAKE_SPECTATOR_ADDR": ":8000",
		"SNAKE_SEED":           "99",
	})

	f := parseFlags(t, "-config", path, "-spectator", ":9000")
	cfg, err := Resolve(f, env)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if cfg.Store.Backend != BackendMemory {
		t.Errorf("backend = %q, want file value", cfg.Store.Backend)
	}
	if cfg.Store.Path != "from-env.json" {
		t.Errorf("path = %q, want env value", cfg.Store.Path)
	}
	if cfg.Spectator.Addr != ":9000" {
		t.Errorf("spectator = %q, want flag value", cfg.Spectator.Addr)
	}
	if !cfg.Audio.Music {
		t.Error("music from file lost")
	}
	if cfg.Game.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Game.Seed)
	}
	if cfg.Game.BoardSize != 16 {
		t.Errorf("board size = %d, want default", cfg.Game.BoardSize)
	}
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, `
[log]
debug = true
`)
	f := parseFlags(t, "-config", path)
	cfg, err := Resolve(f, envMap(nil))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !cfg.Log.Debug {
		t.Error("unset -debug flag overrode file value")
	}
}

func TestTickIntervalFromFile(t *testing.T) {
	path := writeConfig(t, `
[game]
tick_interval = "20ms"
board_size = 8
start_food = [1, 1]
start_snake = [3, 3]
`)
	f := parseFlags(t, "-config", path)
	cfg, err := Resolve(f, envMap(nil))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Game.TickInterval != 20*time.Millisecond {
		t.Errorf("tick = %s, want 20ms", cfg.Game.TickInterval)
	}
	if cfg.Game.BoardSize != 8 {
		t.Errorf("board size = %d, want 8", cfg.Game.BoardSize)
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	path := writeConfig(t, `
[store]
backnd = "json"
`)
	_, err := Resolve(parseFlags(t, "-config", path), envMap(nil))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Resolve(parseFlags(t, "-config", filepath.Join(t.TempDir(), "nope.toml")), envMap(nil))
	if err == nil {
		t.Error("missing config file should fail")
	}
}

func TestBadSeedEnv(t *testing.T) {
	_, err := Resolve(parseFlags(t), envMap(map[string]string{"SNAKE_SEED": "x"}))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero board", func(c *Config) { c.Game.BoardSize = 0 }},
		{"board shorter than grow budget", func(c *Config) {
			c.Game.BoardSize = 3
			c.Game.StartSnake = [2]int{0, 0}
			c.Game.StartFood = [2]int{0, 2}
		}},
		{"negative tick", func(c *Config) { c.Game.TickInterval = -time.Second }},
		{"food outside", func(c *Config) { c.Game.StartFood = [2]int{16, 0} }},
		{"snake outside", func(c *Config) { c.Game.StartSnake = [2]int{-1, 3} }},
		{"overlap", func(c *Config) { c.Game.StartFood = c.Game.StartSnake }},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }},
		{"json without path", func(c *Config) { c.Store.Path = "" }},
		{"postgres without url", func(c *Config) { c.Store.Backend = BackendPostgres }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
		})
	}
}
