// Package service runs long-lived infrastructure beside the game: score store, music, spectator feed
package service

import (
	"log/slog"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/status"
)

// Env is the shared context handed to every service at Init
type Env struct {
	Config   config.Config
	Log      *slog.Logger
	Registry *status.Registry
}

// Service defines the lifecycle of an infrastructure subsystem
//
// Lifecycle:
//  1. Construction
//  2. Init(env) - resolve configuration, open resources
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init(env *Env) error

	// Start is called after every service has initialized
	Start() error

	// Stop must be idempotent
	Stop() error
}
