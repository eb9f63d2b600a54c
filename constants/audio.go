package constants

import "time"

// Output device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond

	// WavResampleQuality is the beep resampler quality for file tracks
	WavResampleQuality = 4
)

// Background track (procedural fallback)
const (
	// MusicBPM is the tempo of the generated loop
	MusicBPM = 120

	// MusicBars is the loop length in 4/4 bars
	MusicBars = 4

	MusicBassAmplitude  = 0.12
	MusicLeadAmplitude  = 0.06
	MusicKickAmplitude  = 0.25
	MusicMasterGain     = 0.8
	MusicNoteAttack     = 10 * time.Millisecond
	MusicKickDuration   = 90 * time.Millisecond
	MusicKickBaseHz     = 55.0
	MusicKickSweepRatio = 2.5
)
