package assets

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

type waveform int

const (
	waveSquare waveform = iota
	waveTriangle
	waveNoise
)

// tone is a synthesized effect: a frequency sweep with a linear fade-out.
type tone struct {
	wave     waveform
	from, to float64 // Hz
	duration float64 // seconds
	volume   float64
}

var tones = map[string]tone{
	"jump":           {waveSquare, 330, 660, 0.12, 0.25},
	"land":           {waveNoise, 0, 0, 0.05, 0.2},
	"dash":           {waveNoise, 0, 0, 0.1, 0.3},
	"dashReject":     {waveSquare, 180, 120, 0.1, 0.25},
	"wallSlide":      {waveNoise, 0, 0, 0.15, 0.1},
	"wallJump":       {waveSquare, 400, 800, 0.1, 0.25},
	"longJump":       {waveTriangle, 300, 700, 0.2, 0.35},
	"cannonball":     {waveTriangle, 600, 200, 0.15, 0.35},
	"cannonballLand": {waveNoise, 0, 0, 0.2, 0.4},
	"die":            {waveSquare, 440, 110, 0.4, 0.3},
	"revive":         {waveTriangle, 220, 880, 0.3, 0.3},
	"broom":          {waveTriangle, 500, 600, 0.2, 0.25},
	"vacuum":         {waveNoise, 0, 0, 0.25, 0.2},
	"umbrella":       {waveTriangle, 700, 500, 0.15, 0.25},
	"boots":          {waveSquare, 120, 90, 0.15, 0.35},
	"grapple":        {waveSquare, 900, 1400, 0.08, 0.2},
	"bell":           {waveTriangle, 1320, 1320, 0.5, 0.3},
	"stopwatch":      {waveSquare, 1000, 1000, 0.05, 0.2},
	"camera":         {waveNoise, 0, 0, 0.06, 0.3},
	"itemSelect":     {waveSquare, 880, 880, 0.04, 0.15},
	"switch":         {waveSquare, 520, 780, 0.06, 0.2},
	"break":          {waveNoise, 0, 0, 0.3, 0.45},
	"gate":           {waveTriangle, 150, 300, 0.25, 0.3},
}

// synthesize renders t as 16-bit little-endian stereo PCM, the format
// audio.Context players read.
func synthesize(t tone, sampleRate int) []byte {
	n := int(t.duration * float64(sampleRate))
	buf := make([]byte, n*4)

	// Deterministic noise.
	seed := uint32(0x9e3779b9)
	var phase float64
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch t.wave {
		case waveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case waveTriangle:
			v = 4*math.Abs(phase-0.5) - 1
		case waveNoise:
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			v = float64(seed)/math.MaxUint32*2 - 1
		}
		v *= t.volume * (1 - progress)

		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}

// SFXPlayer plays the named sound effects. Tones are rendered on first use
// and cached as PCM.
type SFXPlayer struct {
	context *audio.Context
	cache   map[string][]byte
}

func NewSFXPlayer(ctx *audio.Context) *SFXPlayer {
	return &SFXPlayer{
		context: ctx,
		cache:   make(map[string][]byte),
	}
}

// Preload renders every known effect so the first play does not stall.
func (p *SFXPlayer) Preload() {
	for name := range tones {
		p.pcm(name)
	}
}

func (p *SFXPlayer) pcm(name string) ([]byte, bool) {
	if data, ok := p.cache[name]; ok {
		return data, true
	}
	t, ok := tones[name]
	if !ok {
		return nil, false
	}
	data := synthesize(t, p.context.SampleRate())
	p.cache[name] = data
	return data, true
}

// Play starts the effect called name. Unknown names are logged and ignored.
func (p *SFXPlayer) Play(name string) {
	data, ok := p.pcm(name)
	if !ok {
		log.Printf("Warning: no tone for sound %q", name)
		return
	}
	player, err := p.context.NewPlayer(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to play sound %q: %v", name, err)
		return
	}
	player.Play()
}
