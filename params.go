package main

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when the configured tuning constants would
// break the show (negative counts, probabilities outside [0, 1], a cycle
// whose phases don't add up).
var ErrInvalidParams = errors.New("invalid params")

// Particle photo modes.
const (
	// Every burst particle shows the photo of the rocket it came from.
	ParticlePhotosParent = "parent"
	// Every burst particle samples its own photo from the pool.
	ParticlePhotosRandom = "random"
)

// Params holds every tuning constant of the engine. The zero value is not
// useful, start from DefaultParams.
type Params struct {
	Gravity        float64 `yaml:"Gravity"`
	Friction       float64 `yaml:"Friction"`
	BurstCount     int64   `yaml:"BurstCount"`
	GlitterFactor  int64   `yaml:"GlitterFactor"`
	BurstPhotoSize float64 `yaml:"BurstPhotoSize"`
	RocketTipSize  float64 `yaml:"RocketTipSize"`
	TrailAlpha     float64 `yaml:"TrailAlpha"`
	FlashStart     float64 `yaml:"FlashStart"`
	FlashDecay     float64 `yaml:"FlashDecay"`
	TickSeconds    float64 `yaml:"TickSeconds"`
	ParticlePhotos string  `yaml:"ParticlePhotos"`
	Cycle          Cycle   `yaml:"Cycle"`
}

func DefaultParams() (p Params) {
	p.Gravity = 0.04
	p.Friction = 0.99
	p.BurstCount = 40
	p.GlitterFactor = 10
	p.BurstPhotoSize = 120
	p.RocketTipSize = 20
	p.TrailAlpha = 0.2
	p.FlashStart = 0.2
	p.FlashDecay = 0.2
	p.TickSeconds = 1.0 / 60
	p.ParticlePhotos = ParticlePhotosParent
	p.Cycle = DefaultCycle()
	return
}

func (p *Params) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
	}
	if p.Gravity < 0 {
		return invalid("Gravity must not be negative, got %v", p.Gravity)
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return invalid("Friction must be in (0, 1], got %v", p.Friction)
	}
	if p.BurstCount < 0 {
		return invalid("BurstCount must not be negative, got %v", p.BurstCount)
	}
	if p.GlitterFactor < 0 {
		return invalid("GlitterFactor must not be negative, got %v", p.GlitterFactor)
	}
	if p.BurstPhotoSize < 0 || p.RocketTipSize < 0 {
		return invalid("photo sizes must not be negative, got %v and %v",
			p.BurstPhotoSize, p.RocketTipSize)
	}
	for _, a := range []float64{p.TrailAlpha, p.FlashStart, p.FlashDecay} {
		if a < 0 || a > 1 {
			return invalid("TrailAlpha, FlashStart and FlashDecay must be in [0, 1], got %v", a)
		}
	}
	if p.FlashStart > 0 && p.FlashDecay == 0 {
		return invalid("FlashDecay must be positive, or the sky never goes dark again")
	}
	if p.TickSeconds <= 0 {
		return invalid("TickSeconds must be positive, got %v", p.TickSeconds)
	}
	if p.ParticlePhotos != ParticlePhotosParent && p.ParticlePhotos != ParticlePhotosRandom {
		return invalid("ParticlePhotos must be %q or %q, got %q",
			ParticlePhotosParent, ParticlePhotosRandom, p.ParticlePhotos)
	}
	return p.Cycle.Validate()
}
