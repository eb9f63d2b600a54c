// Package audio plays the looping background track
package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/vi-snake/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

var errPlayerClosed = errors.New("music player closed")

// MusicPlayer toggles one looping background track
// The track and the output device are prepared lazily on the first Toggle
// The device is opened at most once per player and stays open until Close
// Device failures disable playback silently; IsPlaying still follows Toggle
type MusicPlayer struct {
	mu sync.Mutex

	out  Output
	file string
	log  *slog.Logger

	ctrl        *beep.Ctrl
	deviceReady bool
	closed      bool
	prepared    bool
	playing     bool
	disabled    bool
}

// PlayerOption customizes a MusicPlayer
type PlayerOption func(*MusicPlayer)

// WithOutput replaces the speaker output
func WithOutput(out Output) PlayerOption {
	return func(p *MusicPlayer) {
		if out != nil {
			p.out = out
		}
	}
}

// WithTrackFile plays a WAV file instead of the generated loop
func WithTrackFile(path string) PlayerOption {
	return func(p *MusicPlayer) {
		p.file = path
	}
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) PlayerOption {
	return func(p *MusicPlayer) {
		if l != nil {
			p.log = l
		}
	}
}

// NewMusicPlayer creates an idle player
func NewMusicPlayer(opts ...PlayerOption) *MusicPlayer {
	p := &MusicPlayer{
		out: NewSpeakerOutput(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Toggle starts playback on first use, then alternates pause and resume
// Returns the new playing state
func (p *MusicPlayer) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.prepared {
		p.prepared = true
		p.playing = true
		if err := p.prepareLocked(); err != nil {
			p.disabled = true
			p.log.Warn("music disabled", "error", err)
		}
		return p.playing
	}

	p.playing = !p.playing
	if p.ctrl != nil {
		p.out.Lock()
		p.ctrl.Paused = !p.playing
		p.out.Unlock()
	}
	return p.playing
}

// Stop drops the track and returns to the unprepared state, the device stays open
// Safe to call repeatedly and before any Toggle
func (p *MusicPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Close stops playback and releases the output device
// A closed player keeps following Toggle but stays silent
func (p *MusicPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	if p.deviceReady {
		p.out.Close()
		p.deviceReady = false
	}
	p.closed = true
}

func (p *MusicPlayer) stopLocked() {
	if p.ctrl != nil {
		p.out.Clear()
	}
	p.ctrl = nil
	p.prepared = false
	p.playing = false
	p.disabled = false
}

// IsPlaying reports whether the track is audible or would be with a working device
func (p *MusicPlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Disabled reports whether the last preparation failed
func (p *MusicPlayer) Disabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disabled
}

// prepareLocked loads the track, opens the device on first use and starts the looping streamer
func (p *MusicPlayer) prepareLocked() error {
	if p.closed {
		return errPlayerClosed
	}
	loop := p.loadTrack()

	if !p.deviceReady {
		if err := p.out.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDuration)); err != nil {
			return fmt.Errorf("failed to init audio output: %w", err)
		}
		p.deviceReady = true
	}

	p.ctrl = &beep.Ctrl{Streamer: loop, Paused: false}
	p.out.Play(p.ctrl)
	return nil
}

// loadTrack returns an endless streamer at the output sample rate
// Falls back to the generated loop when the file is unset or unreadable
func (p *MusicPlayer) loadTrack() beep.Streamer {
	if p.file != "" {
		loop, err := loadWAVLoop(p.file)
		if err == nil {
			p.log.Debug("music track loaded", "file", p.file)
			return loop
		}
		p.log.Warn("music file unusable, using generated track", "file", p.file, "error", err)
	}
	return beep.Loop(-1, newSampleTrack(generateTrack()))
}

// loadWAVLoop decodes a WAV file into memory and loops it, resampled to the output rate
func loadWAVLoop(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s contains no samples", path)
	}

	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))
	if format.SampleRate == sampleRate {
		return loop, nil
	}
	return beep.Resample(constants.WavResampleQuality, format.SampleRate, sampleRate, loop), nil
}
