package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 1200
	WindowHeight = 800
	TPS          = 60

	// Header
	HeaderHeight       = 72
	HeaderScrolledAt   = 20
	NavItemGap         = 32
	ContentMaxWidth    = 1100
	ContentSidePadding = 32

	// Hero particle field
	ParticleCount     = 2500
	ParticleHalfWidth = 10.0
	ParticleSize      = 0.03
	ParticleOpacity   = 0.8
	RotationSpeedY    = 0.0003
	RotationSpeedX    = 0.0001
	WobbleFrequency   = 0.0001 // per millisecond
	WobbleAmplitude   = 0.05
	CameraFOV         = 75.0
	CameraNear        = 0.1
	CameraFar         = 1000.0
	CameraDistance    = 5.0
	FogDensity        = 0.002

	// Reveal-on-scroll
	RevealThreshold  = 0.1
	RevealDuration   = 600 * time.Millisecond
	RevealRise       = 30.0
	RevealStagger    = 150 * time.Millisecond
	ScrollStep       = 60.0
	ScrollEase       = 0.2
	SplashDuration   = 2 * time.Second
	SplashFadeOut    = time.Second
	ContactLoading   = 1500 * time.Millisecond
	ContactSuccess   = 3 * time.Second
	ContentDebounce  = 250 * time.Millisecond
	SoundSampleRate  = 44100
	SoundBufferRatio = 20 // buffer = SampleRate / SoundBufferRatio
)

// Env is the environment-driven layer on top of the compiled-in constants.
type Env struct {
	WindowWidth  int    `env:"NMBK_WINDOW_WIDTH"  envDefault:"1200"`
	WindowHeight int    `env:"NMBK_WINDOW_HEIGHT" envDefault:"800"`
	TPS          int    `env:"NMBK_TPS"           envDefault:"60"`
	Particles    int    `env:"NMBK_PARTICLES"     envDefault:"2500"`
	Sound        bool   `env:"NMBK_SOUND"         envDefault:"true"`
	Notify       bool   `env:"NMBK_NOTIFY"        envDefault:"true"`
	ContentFile  string `env:"NMBK_CONTENT_FILE"`
	LogLevel     string `env:"NMBK_LOG_LEVEL"     envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

// Validate rejects values the window or the particle field cannot work with.
func (e Env) Validate() error {
	if e.WindowWidth <= 0 || e.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", e.WindowWidth, e.WindowHeight)
	}
	if e.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", e.TPS)
	}
	if e.Particles < 0 {
		return fmt.Errorf("particle count %d must not be negative", e.Particles)
	}
	switch e.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", e.LogLevel)
	}
	return nil
}
