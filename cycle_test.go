package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCycle_Phases(t *testing.T) {
	c := DefaultCycle()
	assert.Equal(t, Warmup, c.Phase(0))
	assert.Equal(t, Warmup, c.Phase(9.5))
	assert.Equal(t, Main, c.Phase(10.5))
	assert.Equal(t, Main, c.Phase(29.5))
	assert.Equal(t, Crescendo, c.Phase(30.5))
	assert.Equal(t, Finale, c.Phase(40.5))
	assert.Equal(t, Pause, c.Phase(50.5))
	assert.Equal(t, Pause, c.Phase(59.9))
	// The cycle repeats.
	assert.Equal(t, Warmup, c.Phase(60.5))
	assert.Equal(t, Finale, c.Phase(3*60+45))
	assert.InDelta(t, 0.25, c.Progress(60+15), 1e-12)
}

func TestCycle_SpawnProbabilityFollowsPhases(t *testing.T) {
	c := DefaultCycle()
	assert.InDelta(t, 0.01, c.SpawnProbability(5), 1e-12)
	assert.InDelta(t, 0.03, c.SpawnProbability(20), 1e-12)
	assert.InDelta(t, 0.075, c.SpawnProbability(35), 1e-12)
	assert.InDelta(t, 0.125, c.SpawnProbability(45), 1e-12)
	assert.InDelta(t, 0.005, c.SpawnProbability(55), 1e-12)
}

func TestCycle_BuildUpNeverDrops(t *testing.T) {
	c := DefaultCycle()
	const dt = 0.01
	for elapsed := 0.0; elapsed+dt < c.Seconds; elapsed += dt {
		from, to := c.Phase(elapsed), c.Phase(elapsed+dt)
		if from == Pause || to == Pause {
			continue
		}
		// Within Warmup, Main, Crescendo and Finale, and across the
		// boundaries between them, the probability only goes up.
		assert.GreaterOrEqual(t,
			c.SpawnProbability(elapsed+dt), c.SpawnProbability(elapsed)-1e-12,
			"at %v (%v -> %v)", elapsed, from, to)
	}
}

func TestCycle_QuietPhasesBelowFinalePeak(t *testing.T) {
	c := DefaultCycle()
	peak := 0.0
	for elapsed := 40.0; elapsed < 50; elapsed += 0.01 {
		peak = max(peak, c.SpawnProbability(elapsed))
	}
	for elapsed := 0.0; elapsed < 10; elapsed += 0.01 {
		assert.Less(t, c.SpawnProbability(elapsed), peak)
	}
	for elapsed := 50.0; elapsed < 60; elapsed += 0.01 {
		assert.Less(t, c.SpawnProbability(elapsed), peak)
	}
}

func TestCycle_DecideBigRocketsOnlyLate(t *testing.T) {
	c := DefaultCycle()
	c.Warmup = Phase{Fraction: 1.0 / 6, From: 1, To: 1}
	c.Main = Phase{Fraction: 2.0 / 6, From: 1, To: 1}
	c.Crescendo = Phase{Fraction: 1.0 / 6, From: 1, To: 1}
	c.Finale = Phase{Fraction: 1.0 / 6, From: 1, To: 1}
	c.Pause = Phase{Fraction: 1.0 / 6, From: 1, To: 1}
	c.BigRocketChance = 1

	r := NewRand(1)
	for elapsed := 0.0; elapsed < 60; elapsed += 0.5 {
		spawn, kind := c.Decide(&r, elapsed)
		assert.True(t, spawn)
		if c.Progress(elapsed) > 0.7 {
			assert.Equal(t, KindBigRocket, kind, "at %v", elapsed)
		} else {
			assert.Equal(t, KindRocket, kind, "at %v", elapsed)
		}
	}
}

func TestCycle_DecideNeverSpawnsWithZeroProbability(t *testing.T) {
	c := quietParams().Cycle
	r := NewRand(1)
	for elapsed := 0.0; elapsed < 120; elapsed += 0.1 {
		spawn, _ := c.Decide(&r, elapsed)
		assert.False(t, spawn)
	}
}

func TestCycle_Validate(t *testing.T) {
	c := DefaultCycle()
	assert.NoError(t, c.Validate())

	broken := map[string]func(c *Cycle){
		"no length":         func(c *Cycle) { c.Seconds = 0 },
		"fractions too big": func(c *Cycle) { c.Pause.Fraction = 0.5 },
		"empty phase":       func(c *Cycle) { c.Main.Fraction = 0; c.Pause.Fraction = 0.5 },
		"not a probability": func(c *Cycle) { c.Finale.To = 1.5 },
		"ramp goes down":    func(c *Cycle) { c.Main.From, c.Main.To = 0.05, 0.01 },
		// Main ending above the start of Crescendo is a drop in the middle
		// of the build-up.
		"drop between ramps": func(c *Cycle) { c.Main.To = 0.10; c.Crescendo.From = 0.02 },
		"loud pause":         func(c *Cycle) { c.Pause.From, c.Pause.To = 0.2, 0.2 },
		"loud warmup":        func(c *Cycle) { c.Warmup.To = 0.14 },
		"big chance":         func(c *Cycle) { c.BigRocketChance = -0.1 },
		"big after":          func(c *Cycle) { c.BigRocketAfter = 2 },
	}
	for name, breakIt := range broken {
		c := DefaultCycle()
		breakIt(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalidParams, name)
	}
}
