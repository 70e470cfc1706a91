package main

import (
	"fmt"
	"math"
)

type PhaseName int64

const (
	Warmup PhaseName = iota
	Main
	Crescendo
	Finale
	Pause
)

func (p PhaseName) String() string {
	switch p {
	case Warmup:
		return "warmup"
	case Main:
		return "main"
	case Crescendo:
		return "crescendo"
	case Finale:
		return "finale"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// Phase is a slice of the cycle. Fraction is its share of the cycle and the
// spawn probability goes linearly from From to To while it lasts.
type Phase struct {
	Fraction float64 `yaml:"Fraction"`
	From     float64 `yaml:"From"`
	To       float64 `yaml:"To"`
}

// Cycle is the repeating window that paces the show. Every tick the world
// asks the cycle whether to launch a rocket; the answer depends only on
// where the tick falls inside the window.
type Cycle struct {
	Seconds   float64 `yaml:"Seconds"`
	Warmup    Phase   `yaml:"Warmup"`
	Main      Phase   `yaml:"Main"`
	Crescendo Phase   `yaml:"Crescendo"`
	Finale    Phase   `yaml:"Finale"`
	Pause     Phase   `yaml:"Pause"`
	// Late in the cycle, a launched rocket is a big one with this chance.
	BigRocketChance float64 `yaml:"BigRocketChance"`
	// Progress (0 to 1) after which big rockets may appear.
	BigRocketAfter float64 `yaml:"BigRocketAfter"`
}

func DefaultCycle() (c Cycle) {
	c.Seconds = 60
	c.Warmup = Phase{Fraction: 1.0 / 6, From: 0.01, To: 0.01}
	c.Main = Phase{Fraction: 2.0 / 6, From: 0.01, To: 0.05}
	c.Crescendo = Phase{Fraction: 1.0 / 6, From: 0.05, To: 0.10}
	c.Finale = Phase{Fraction: 1.0 / 6, From: 0.11, To: 0.14}
	c.Pause = Phase{Fraction: 1.0 / 6, From: 0.005, To: 0.005}
	c.BigRocketChance = 0.2
	c.BigRocketAfter = 0.7
	return
}

func (c *Cycle) phases() [5]*Phase {
	return [5]*Phase{&c.Warmup, &c.Main, &c.Crescendo, &c.Finale, &c.Pause}
}

// Progress returns where elapsed falls inside the cycle, from 0 (start of
// the warmup) to 1 (end of the pause).
func (c *Cycle) Progress(elapsed float64) float64 {
	pos := math.Mod(elapsed, c.Seconds)
	if pos < 0 {
		pos += c.Seconds
	}
	return pos / c.Seconds
}

// locate returns the phase containing the given progress and how far into
// that phase the progress is, from 0 to 1.
func (c *Cycle) locate(progress float64) (PhaseName, float64) {
	start := 0.0
	phases := c.phases()
	for i, p := range phases {
		end := start + p.Fraction
		// The last phase takes whatever rounding left over.
		if progress < end || i == len(phases)-1 {
			inside := 0.0
			if p.Fraction > 0 {
				inside = math.Min(1, (progress-start)/p.Fraction)
			}
			return PhaseName(i), inside
		}
		start = end
	}
	panic("unreachable")
}

func (c *Cycle) Phase(elapsed float64) PhaseName {
	name, _ := c.locate(c.Progress(elapsed))
	return name
}

// SpawnProbability returns the chance that a rocket is launched on a tick
// that starts elapsed seconds after the show started.
func (c *Cycle) SpawnProbability(elapsed float64) float64 {
	name, inside := c.locate(c.Progress(elapsed))
	p := c.phases()[name]
	return p.From + (p.To-p.From)*inside
}

// Decide draws whether to launch a rocket this tick and which kind.
func (c *Cycle) Decide(r *Rand, elapsed float64) (spawn bool, kind RocketKind) {
	if !r.Chance(c.SpawnProbability(elapsed)) {
		return false, KindRocket
	}
	if c.Progress(elapsed) > c.BigRocketAfter && r.Chance(c.BigRocketChance) {
		return true, KindBigRocket
	}
	return true, KindRocket
}

func (c *Cycle) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: cycle: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
	}
	if c.Seconds <= 0 {
		return invalid("Seconds must be positive, got %v", c.Seconds)
	}

	sum := 0.0
	for i, p := range c.phases() {
		name := PhaseName(i)
		if p.Fraction <= 0 {
			return invalid("%v: Fraction must be positive, got %v", name, p.Fraction)
		}
		if p.From < 0 || p.From > 1 || p.To < 0 || p.To > 1 {
			return invalid("%v: probabilities must be in [0, 1], got %v and %v",
				name, p.From, p.To)
		}
		sum += p.Fraction
	}
	if math.Abs(sum-1) > 1e-9 {
		return invalid("phase fractions must add up to 1, got %v", sum)
	}

	// The build-up must never drop.
	ramp := []*Phase{&c.Main, &c.Crescendo, &c.Finale}
	for i, p := range ramp {
		name := PhaseName(int(Main) + i)
		if p.To < p.From {
			return invalid("%v: probability must not decrease, goes from %v to %v",
				name, p.From, p.To)
		}
		if i > 0 && p.From < ramp[i-1].To {
			return invalid("%v starts at %v, below the %v of the previous phase",
				name, p.From, ramp[i-1].To)
		}
	}

	peak := c.Finale.To
	for _, quiet := range []float64{c.Warmup.From, c.Warmup.To, c.Pause.From, c.Pause.To} {
		if quiet >= peak {
			return invalid("warmup and pause must stay below the finale peak %v, got %v",
				peak, quiet)
		}
	}

	if c.BigRocketChance < 0 || c.BigRocketChance > 1 {
		return invalid("BigRocketChance must be in [0, 1], got %v", c.BigRocketChance)
	}
	if c.BigRocketAfter < 0 || c.BigRocketAfter > 1 {
		return invalid("BigRocketAfter must be in [0, 1], got %v", c.BigRocketAfter)
	}
	return nil
}
