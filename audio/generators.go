package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	bumpFreq     = 120.0
	bumpDuration = 80 * time.Millisecond

	contactHigh     = 880.0
	contactLow      = 660.0
	contactDuration = 120 * time.Millisecond // Per tone
)

// BuzzGenerator is a harmonic-rich low tone with a short fade in
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.01, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// bumpStream is played when the player walks into a wall or the edge
func bumpStream(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(bumpDuration), NewBuzzGenerator(sr, bumpFreq))
}

// contactStream is a falling two-tone chime played when a chaser reaches the player
func contactStream(sr beep.SampleRate) (beep.Streamer, error) {
	high, err := generators.SineTone(sr, contactHigh)
	if err != nil {
		return nil, err
	}
	low, err := generators.SineTone(sr, contactLow)
	if err != nil {
		return nil, err
	}
	chime := beep.Seq(
		beep.Take(sr.N(contactDuration), high),
		beep.Take(sr.N(contactDuration), low),
	)
	return &effects.Volume{Streamer: chime, Base: 2, Volume: -2}, nil
}
