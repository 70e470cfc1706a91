package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRocket_LaunchesFromBottomEdge(t *testing.T) {
	w := NewWorld(DefaultParams(), 1, 800, 600)
	for range 1000 {
		r := w.NewRocket(KindRocket)
		assert.Equal(t, KindRocket, r.Kind)
		assert.Equal(t, 600.0, r.Pos.Y)
		assert.GreaterOrEqual(t, r.Pos.X, 0.0)
		assert.Less(t, r.Pos.X, 800.0)
		assert.GreaterOrEqual(t, r.Speed.X, -1.5)
		assert.Less(t, r.Speed.X, 1.5)
		assert.Greater(t, r.Speed.Y, -14.0)
		assert.LessOrEqual(t, r.Speed.Y, -10.0)
		assert.GreaterOrEqual(t, r.TargetY, 60.0)
		assert.Less(t, r.TargetY, 300.0)
		assert.GreaterOrEqual(t, r.Hue, 0.0)
		assert.Less(t, r.Hue, 360.0)
		assert.Equal(t, 2.0, r.Size)
		assert.Nil(t, r.Photo)

		b := w.NewRocket(KindBigRocket)
		assert.Equal(t, KindBigRocket, b.Kind)
		assert.Equal(t, 600.0, b.Pos.Y)
		assert.GreaterOrEqual(t, b.Speed.X, -1.0)
		assert.Less(t, b.Speed.X, 1.0)
		assert.Greater(t, b.Speed.Y, -14.0)
		assert.LessOrEqual(t, b.Speed.Y, -12.0)
		assert.GreaterOrEqual(t, b.TargetY, 60.0)
		assert.Less(t, b.TargetY, 180.0)
		assert.Equal(t, 5.0, b.Size)
	}
}

func TestRocket_PicksPhotoFromPool(t *testing.T) {
	w := NewWorld(DefaultParams(), 1, 800, 600)
	w.Photos = testPhotos(3)
	for range 100 {
		r := w.NewRocket(KindRocket)
		assert.Contains(t, w.Photos, r.Photo)
	}
}

func TestRocket_SpeedGrowsByGravityUntilExplosion(t *testing.T) {
	w := NewWorld(DefaultParams(), 3, 800, 600)
	var c recordingCanvas
	r := w.NewRocket(KindRocket)

	prevY := r.Pos.Y
	for i := 0; ; i++ {
		require.Less(t, i, 1000, "the rocket never exploded")
		prevSpeed := r.Speed.Y
		alive := r.Step(&w, &c)
		assert.InDelta(t, prevSpeed+w.Gravity, r.Speed.Y, 1e-9)
		assert.Less(t, r.Pos.Y, prevY)
		prevY = r.Pos.Y
		if !alive {
			assert.True(t, r.Exploded())
			break
		}
		assert.False(t, r.Exploded())
	}
	assert.Len(t, w.Particles, int(w.BurstCount))
}

func TestRocket_ExplodesAtTheTopOfItsFlight(t *testing.T) {
	w := NewWorld(DefaultParams(), 3, 800, 600)
	var c recordingCanvas
	r := w.NewRocket(KindRocket)
	// Out of reach, so only the speed can make it explode.
	r.TargetY = -1e9

	for r.Step(&w, &c) {
		assert.Less(t, r.Speed.Y, 0.0)
	}
	assert.GreaterOrEqual(t, r.Speed.Y, 0.0)
	assert.Less(t, r.Speed.Y, w.Gravity)
}

func TestRocket_BigRocketGrows(t *testing.T) {
	w := NewWorld(DefaultParams(), 3, 800, 600)
	var c recordingCanvas
	r := w.NewRocket(KindBigRocket)
	r.Step(&w, &c)
	assert.Equal(t, 6.5, r.Size)
	r.Step(&w, &c)
	assert.Equal(t, 8.0, r.Size)
}

func TestRocket_DrawWithoutPhotoDrawsOnlyShapes(t *testing.T) {
	w := NewWorld(DefaultParams(), 3, 800, 600)
	for _, kind := range []RocketKind{KindRocket, KindBigRocket} {
		var c recordingCanvas
		r := w.NewRocket(kind)
		r.Draw(&w, &c)
		require.Len(t, c.calls, 1)
		assert.Equal(t, drawCircle, c.calls[0].Kind)
		assert.Equal(t, r.Size, c.calls[0].Radius)
		assert.Equal(t, BlendSourceOver, c.calls[0].Blend)
	}
}

func TestRocket_DrawWithPhoto(t *testing.T) {
	w := NewWorld(DefaultParams(), 3, 800, 600)
	w.Photos = testPhotos(1) // 100x50

	var c recordingCanvas
	r := w.NewRocket(KindRocket)
	r.Draw(&w, &c)
	require.Len(t, c.calls, 2)
	assert.Equal(t, drawCircle, c.calls[0].Kind)
	assert.Equal(t, rocketColor, c.calls[0].Color)
	assert.Equal(t, drawPhoto, c.calls[1].Kind)
	assert.Equal(t, 20.0, c.calls[1].Width)
	assert.Equal(t, 10.0, c.calls[1].Height)

	c = recordingCanvas{}
	b := w.NewRocket(KindBigRocket)
	b.Draw(&w, &c)
	require.Len(t, c.calls, 2)
	assert.Equal(t, drawPhoto, c.calls[0].Kind)
	assert.Equal(t, 20.0, c.calls[0].Width)
	assert.Equal(t, 10.0, c.calls[0].Height)
	assert.Equal(t, drawCircle, c.calls[1].Kind)
	assert.Equal(t, BlendOverlay, c.calls[1].Blend)
	assert.InDelta(t, 20/1.5, c.calls[1].Radius, 1e-9)
	assert.Equal(t, Alpha8(0.3), c.calls[1].Color.A)
}
