package config

import (
	"flag"
	"fmt"
)

// Flags holds command-line values, only flags the user set override other sources
type Flags struct {
	fs *flag.FlagSet

	ConfigPath  string
	Debug       bool
	Music       bool
	Store       string
	StorePath   string
	DatabaseURL string
	Spectator   string
	Seed        uint64
}

// RegisterFlags binds the CLI surface onto fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML config file")
	fs.BoolVar(&f.Debug, "debug", false, "write logs to the logs directory")
	fs.BoolVar(&f.Music, "music", false, "start with background music on")
	fs.StringVar(&f.Store, "store", "", "high score backend: json, postgres, memory")
	fs.StringVar(&f.StorePath, "store-path", "", "json store file")
	fs.StringVar(&f.DatabaseURL, "database-url", "", "postgres connection string")
	fs.StringVar(&f.Spectator, "spectator", "", "spectator feed listen address, empty disables")
	fs.Uint64Var(&f.Seed, "seed", 0, "food placement seed, 0 seeds from the clock")
	return f
}

// apply overlays explicitly set flags onto cfg
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			cfg.Log.Debug = f.Debug
		case "music":
			cfg.Audio.Music = f.Music
		case "store":
			cfg.Store.Backend = f.Store
		case "store-path":
			cfg.Store.Path = f.StorePath
		case "database-url":
			cfg.Store.DatabaseURL = f.DatabaseURL
		case "spectator":
			cfg.Spectator.Addr = f.Spectator
		case "seed":
			cfg.Game.Seed = f.Seed
		}
	})
}

// Resolve builds the effective configuration: default < file < env < flags
// fs must already be parsed
func Resolve(f *Flags, getenv func(string) string) (Config, error) {
	cfg := Default()

	if f != nil && f.ConfigPath != "" {
		if err := LoadFile(&cfg, f.ConfigPath); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if f != nil {
		f.apply(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
