package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is the sound device the music player drives
// Lock/Unlock guard streamer mutation against the playback goroutine
// Init succeeds at most once per process, even after Close
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Clear()
	Close()
}

// speakerOutput is the default Output backed by the beep speaker
type speakerOutput struct{}

// NewSpeakerOutput returns an Output playing through the system audio device
func NewSpeakerOutput() Output {
	return speakerOutput{}
}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Clear()               { speaker.Clear() }
func (speakerOutput) Close()               { speaker.Close() }
