package main

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"testing"
)

func TestNewRun(t *testing.T) {
	r1 := NewRun(42)
	r2 := NewRun(42)
	assert.Equal(t, int64(42), r1.Seed)
	assert.NotEqual(t, uuid.Nil, r1.Id)
	assert.NotEqual(t, r1.Id, r2.Id)

	r3 := NewRun(0)
	assert.NotEqual(t, int64(0), r3.Seed)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	w := NewWorld(busyParams(), 42, 800, 600)
	w.Photos = testPhotos(1)
	w.Start()
	for range 200 {
		w.Step(nullCanvas{})
	}
	require.NotEmpty(t, w.Rockets)
	require.NotEmpty(t, w.Particles)

	run := NewRun(42)
	s := w.Snapshot(run)
	assert.Equal(t, run.Id.String(), s.RunId)
	assert.Equal(t, int64(200), s.TickIdx)
	assert.Equal(t, w.Cycle.Phase(w.Elapsed).String(), s.Phase)
	assert.True(t, s.Rockets[0].HasPhoto)

	loaded, err := DeserializeSnapshot(s.Serialize())
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSnapshot_WrongVersion(t *testing.T) {
	w := NewWorld(quietParams(), 42, 800, 600)
	s := w.Snapshot(Run{})
	assert.Empty(t, s.RunId)
	s.Version = SnapshotVersion + 1
	_, err := DeserializeSnapshot(s.Serialize())
	assert.Error(t, err)

	_, err = DeserializeSnapshot([]byte("garbage"))
	assert.Error(t, err)
}

func TestSnapshot_IsMsgpack(t *testing.T) {
	w := NewWorld(quietParams(), 42, 800, 600)
	s := w.Snapshot(Run{Seed: 5})
	var fields map[string]any
	require.NoError(t, msgpack.Unmarshal(s.Serialize(), &fields))
	assert.EqualValues(t, 5, fields["seed"])
	assert.Equal(t, "warmup", fields["phase"])
}
