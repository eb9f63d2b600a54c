package audio

import "fmt"

// sampleTrack exposes a mono buffer as a stereo beep.StreamSeeker
type sampleTrack struct {
	samples floatBuffer
	pos     int
}

func newSampleTrack(samples floatBuffer) *sampleTrack {
	return &sampleTrack{samples: samples}
}

func (t *sampleTrack) Stream(out [][2]float64) (n int, ok bool) {
	if t.pos >= len(t.samples) {
		return 0, false
	}
	for n < len(out) && t.pos < len(t.samples) {
		v := t.samples[t.pos]
		out[n][0] = v
		out[n][1] = v
		n++
		t.pos++
	}
	return n, true
}

func (t *sampleTrack) Err() error    { return nil }
func (t *sampleTrack) Len() int      { return len(t.samples) }
func (t *sampleTrack) Position() int { return t.pos }

func (t *sampleTrack) Seek(p int) error {
	if p < 0 || p > len(t.samples) {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, len(t.samples))
	}
	t.pos = p
	return nil
}
