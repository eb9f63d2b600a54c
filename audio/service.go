package audio

import (
	"github.com/lixenwraith/vi-snake/service"
)

// Service wraps MusicPlayer as a service.Service
// Audio problems never fail the lifecycle
type Service struct {
	player *MusicPlayer
	opts   []PlayerOption
	autoOn bool
}

// NewService creates the audio service, opts are applied to the player at Init
func NewService(opts ...PlayerOption) *Service {
	return &Service{opts: opts}
}

func (s *Service) Name() string           { return "audio" }
func (s *Service) Dependencies() []string { return nil }

// Init builds the player from the audio config section
func (s *Service) Init(env *service.Env) error {
	opts := []PlayerOption{
		WithTrackFile(env.Config.Audio.File),
		WithLogger(env.Log),
	}
	s.player = NewMusicPlayer(append(opts, s.opts...)...)
	s.autoOn = env.Config.Audio.Music
	return nil
}

// Start turns music on when configured to
func (s *Service) Start() error {
	if s.autoOn && !s.player.IsPlaying() {
		s.player.Toggle()
	}
	return nil
}

// Stop releases the player and its device
func (s *Service) Stop() error {
	if s.player != nil {
		s.player.Close()
	}
	return nil
}

// Player returns the music player, nil before Init
func (s *Service) Player() *MusicPlayer {
	return s.player
}
