package game

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const audioSampleRate = 48000

// AudioBank holds pre-rendered PCM for every sound effect. Tones are
// synthesised in code so no asset files ship with the binary. Playback is
// fire and forget; the sim never blocks on audio.
type AudioBank struct {
	ctx     *audio.Context
	enabled bool

	shoot     []byte
	hit       []byte
	explosion []byte
	rescue    []byte

	warning *audio.Player // looping boundary-warning tone
}

// NewAudioBank creates the audio context and renders all effect tones.
func NewAudioBank(enabled bool) (*AudioBank, error) {
	ab := &AudioBank{
		ctx:     audio.NewContext(audioSampleRate),
		enabled: enabled,
	}
	ab.shoot = renderTone(880, 0.06, 0.25, toneSquare)
	ab.hit = renderTone(440, 0.08, 0.3, toneSquare)
	ab.explosion = renderNoise(0.5, 0.5)
	ab.rescue = renderChirp(520, 1040, 0.25, 0.3)

	warnPCM := renderTone(300, 0.5, 0.3, toneSine)
	loop := audio.NewInfiniteLoop(bytes.NewReader(warnPCM), int64(len(warnPCM)))
	p, err := ab.ctx.NewPlayer(loop)
	if err != nil {
		return nil, err
	}
	ab.warning = p
	return ab, nil
}

// SetEnabled flips the mute switch; the warning loop stops immediately.
func (ab *AudioBank) SetEnabled(on bool) {
	ab.enabled = on
	if !on && ab.warning.IsPlaying() {
		ab.warning.Pause()
	}
}

// Play dispatches a one-shot effect for an event. Warning on/off control
// the looping tone instead.
func (ab *AudioBank) Play(ev Event) {
	if !ab.enabled {
		return
	}
	switch ev.Kind {
	case EventShoot:
		ab.oneShot(ab.shoot)
	case EventHit:
		ab.oneShot(ab.hit)
	case EventExplosion, EventGameOver:
		ab.oneShot(ab.explosion)
	case EventRescue, EventVictory:
		ab.oneShot(ab.rescue)
	case EventWarningOn:
		if !ab.warning.IsPlaying() {
			if err := ab.warning.Rewind(); err == nil {
				ab.warning.Play()
			}
		}
	case EventWarningOff:
		ab.warning.Pause()
	}
}

func (ab *AudioBank) oneShot(pcm []byte) {
	p, err := ab.ctx.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	p.Play()
}

type toneShape int

const (
	toneSine toneShape = iota
	toneSquare
)

// renderTone synthesises a mono-duplicated 16-bit LE stereo tone with a
// linear fade-out so clips do not click.
func renderTone(freq, seconds, volume float64, shape toneShape) []byte {
	n := int(float64(audioSampleRate) * seconds)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / audioSampleRate
		v := math.Sin(2 * math.Pi * freq * t)
		if shape == toneSquare {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		fade := 1 - float64(i)/float64(n)
		writeSample(out, i, v*volume*fade)
	}
	return out
}

// renderChirp sweeps linearly from f0 to f1.
func renderChirp(f0, f1, seconds, volume float64) []byte {
	n := int(float64(audioSampleRate) * seconds)
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := f0 + (f1-f0)*p
		phase += 2 * math.Pi * freq / audioSampleRate
		fade := 1 - p
		writeSample(out, i, math.Sin(phase)*volume*fade)
	}
	return out
}

// renderNoise is the explosion rumble: decaying pseudo-random noise.
func renderNoise(seconds, volume float64) []byte {
	n := int(float64(audioSampleRate) * seconds)
	out := make([]byte, n*4)
	// Small LCG; quality is irrelevant for a rumble.
	state := uint32(0x12345678)
	for i := 0; i < n; i++ {
		state = state*1664525 + 1013904223
		v := (float64(state>>16)/32768.0 - 1.0)
		decay := math.Pow(1-float64(i)/float64(n), 2)
		writeSample(out, i, v*volume*decay)
	}
	return out
}

// writeSample stores one stereo 16-bit LE frame.
func writeSample(out []byte, i int, v float64) {
	s := int16(clamp(v, -1, 1) * 32767)
	lo := byte(s)
	hi := byte(s >> 8)
	out[i*4] = lo
	out[i*4+1] = hi
	out[i*4+2] = lo
	out[i*4+3] = hi
}
