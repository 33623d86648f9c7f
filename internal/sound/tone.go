// Package sound plays the short interface tones of the site.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a decaying sine blip.
type Tone struct {
	Freq   float64 // Hz
	Dur    time.Duration
	Volume float64 // peak amplitude, 0-1
}

var (
	// Click accompanies navigation.
	Click = Tone{Freq: 880, Dur: 60 * time.Millisecond, Volume: 0.15}
	// Chime confirms a sent message.
	Chime = Tone{Freq: 1320, Dur: 350 * time.Millisecond, Volume: 0.2}
)

// Streamer renders the tone at sr as a finite beep.Streamer.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(t.Dur)
	step := 2 * math.Pi * t.Freq / float64(sr)
	vol := clamp01(t.Volume)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			progress := float64(pos) / float64(total)
			env := math.Exp(-5*progress) * (1 - progress)
			v := math.Sin(step*float64(pos)) * vol * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
