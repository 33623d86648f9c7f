package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/logging"
)

// Player plays interface tones.
type Player interface {
	Play(t Tone)
}

// Nop discards every tone.
type Nop struct{}

func (Nop) Play(Tone) {}

// Speaker plays tones through the system audio device.
type Speaker struct {
	rate beep.SampleRate
	log  *zap.Logger
}

// NewSpeaker initialises the audio device.
func NewSpeaker(log *zap.Logger) (*Speaker, error) {
	rate := beep.SampleRate(config.SoundSampleRate)
	bufferSize := rate.N(time.Second / config.SoundBufferRatio)
	if err := speaker.Init(rate, bufferSize); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: rate, log: logging.OrNop(log)}, nil
}

// Play mixes t into whatever is already playing.
func (s *Speaker) Play(t Tone) {
	s.log.Debug("play", zap.Float64("freq", t.Freq), zap.Duration("dur", t.Dur))
	speaker.Play(t.Streamer(s.rate))
}

// New returns a Speaker, or Nop when sound is disabled or the audio device
// cannot be opened.
func New(enabled bool, log *zap.Logger) Player {
	if !enabled {
		return Nop{}
	}
	s, err := NewSpeaker(log)
	if err != nil {
		logging.OrNop(log).Warn("sound disabled", zap.Error(err))
		return Nop{}
	}
	return s
}
