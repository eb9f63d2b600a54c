package audio

import (
	"math"

	"github.com/lixenwraith/vi-snake/constants"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constants.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := durationToSamples(attackSec)
	releaseSamples := durationToSamples(releaseSec)

	releaseStart := max(total-releaseSamples, attackSamples)

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixAt adds src*scale into dst starting at offset, clipping at dst's end
func mixAt(dst, src floatBuffer, offset int, scale float64) {
	for i, v := range src {
		j := offset + i
		if j >= len(dst) {
			return
		}
		dst[j] += v * scale
	}
}

// durationToSamples converts seconds to sample count
func durationToSamples(sec float64) int {
	return int(sec * float64(constants.AudioSampleRate))
}

// kickDrum is a sine with a downward pitch sweep and exponential decay
func kickDrum() floatBuffer {
	samples := durationToSamples(constants.MusicKickDuration.Seconds())
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := range buf {
		t := float64(i) / float64(samples)
		freq := constants.MusicKickBaseHz * (1 + (constants.MusicKickSweepRatio-1)*math.Exp(-8*t))
		phase += freq / float64(constants.AudioSampleRate)
		buf[i] = math.Sin(2*math.Pi*phase) * math.Exp(-5*t)
	}
	return buf
}

// chord is one bar of the progression: bass root and three arpeggio tones
type chord struct {
	root float64
	arp  [3]float64
}

// Am F C G
var progression = [constants.MusicBars]chord{
	{110.00, [3]float64{440.00, 523.25, 659.25}},
	{87.31, [3]float64{349.23, 440.00, 523.25}},
	{130.81, [3]float64{523.25, 659.25, 783.99}},
	{98.00, [3]float64{392.00, 493.88, 587.33}},
}

// arpOrder walks the chord up and back down across eight eighth notes
var arpOrder = [8]int{0, 1, 2, 1, 0, 1, 2, 1}

// generateTrack renders the background loop: bass on quarters, arpeggio on eighths, kick on every beat
func generateTrack() floatBuffer {
	beat := durationToSamples(60.0 / constants.MusicBPM)
	eighth := beat / 2
	bar := beat * 4
	track := make(floatBuffer, bar*constants.MusicBars)

	attack := constants.MusicNoteAttack.Seconds()
	kick := kickDrum()

	for b, c := range progression {
		barStart := b * bar

		for q := 0; q < 4; q++ {
			start := barStart + q*beat

			bass := oscillator(waveSaw, c.root, beat)
			applyEnvelope(bass, attack, float64(beat)/float64(constants.AudioSampleRate)/2)
			mixAt(track, bass, start, constants.MusicBassAmplitude)

			mixAt(track, kick, start, constants.MusicKickAmplitude)
		}

		for e, idx := range arpOrder {
			lead := oscillator(waveSquare, c.arp[idx], eighth)
			applyEnvelope(lead, attack, float64(eighth)/float64(constants.AudioSampleRate)/2)
			mixAt(track, lead, barStart+e*eighth, constants.MusicLeadAmplitude)
		}
	}

	for i, v := range track {
		track[i] = clamp(v*constants.MusicMasterGain, -1, 1)
	}
	return track
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
