package reveal

import (
	"time"

	"github.com/iburimskiy/nmbk-site/internal/config"
)

// Fade returns the opacity and downward offset of an element for the
// fade-up transition. Unrevealed elements are invisible and fully offset.
func Fade(revealedAt time.Time, revealed bool, now time.Time, delay time.Duration) (alpha, offset float64) {
	if !revealed {
		return 0, config.RevealRise
	}
	elapsed := now.Sub(revealedAt) - delay
	if elapsed <= 0 {
		return 0, config.RevealRise
	}
	p := float64(elapsed) / float64(config.RevealDuration)
	if p >= 1 {
		return 1, 0
	}
	// ease-out cubic
	e := 1 - (1-p)*(1-p)*(1-p)
	return e, config.RevealRise * (1 - e)
}

// Stagger returns the transition delay of the i-th card in a row.
func Stagger(i int) time.Duration {
	return time.Duration(i) * config.RevealStagger
}
