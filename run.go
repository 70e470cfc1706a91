package main

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"time"
)

// Run is one start-to-stop execution of the show. A new Run starts every
// time the user starts the show.
type Run struct {
	Id    uuid.UUID
	Seed  int64
	Start time.Time
}

// NewRun creates the identity of a new run. A seed of 0 means a seed based on
// the current time.
func NewRun(seed int64) (r Run) {
	r.Id = uuid.New()
	r.Start = time.Now()
	r.Seed = seed
	if r.Seed == 0 {
		r.Seed = r.Start.UnixNano()
	}
	return
}

// SnapshotVersion must change every time Snapshot changes in a way that
// makes old snapshots unreadable.
const SnapshotVersion = 1

// Snapshot is what a World looks like at the end of a tick. Photos are not
// included, only whether an entity carries one.
type Snapshot struct {
	Version   int64           `msgpack:"version"`
	RunId     string          `msgpack:"run_id"`
	Seed      int64           `msgpack:"seed"`
	TickIdx   int64           `msgpack:"tick"`
	Elapsed   float64         `msgpack:"elapsed"`
	Phase     string          `msgpack:"phase"`
	Width     float64         `msgpack:"width"`
	Height    float64         `msgpack:"height"`
	Flash     Flash           `msgpack:"flash"`
	Rockets   []RocketState   `msgpack:"rockets"`
	Particles []ParticleState `msgpack:"particles"`
}

type RocketState struct {
	Kind     RocketKind `msgpack:"kind"`
	Pos      Pt         `msgpack:"pos"`
	Speed    Pt         `msgpack:"speed"`
	Size     float64    `msgpack:"size"`
	Hue      float64    `msgpack:"hue"`
	TargetY  float64    `msgpack:"target_y"`
	HasPhoto bool       `msgpack:"has_photo"`
}

type ParticleState struct {
	Kind     ParticleKind `msgpack:"kind"`
	Pos      Pt           `msgpack:"pos"`
	Speed    Pt           `msgpack:"speed"`
	Alpha    float64      `msgpack:"alpha"`
	Decay    float64      `msgpack:"decay"`
	Hue      float64      `msgpack:"hue"`
	Angle    float64      `msgpack:"angle"`
	Spin     float64      `msgpack:"spin"`
	HasPhoto bool         `msgpack:"has_photo"`
}

func (w *World) Snapshot(run Run) (s Snapshot) {
	s.Version = SnapshotVersion
	if run.Id != uuid.Nil {
		s.RunId = run.Id.String()
	}
	s.Seed = run.Seed
	s.TickIdx = w.TickIdx
	s.Elapsed = w.Elapsed
	s.Phase = w.Cycle.Phase(w.Elapsed).String()
	s.Width = w.Width
	s.Height = w.Height
	s.Flash = w.Flash
	s.Rockets = make([]RocketState, len(w.Rockets))
	for i, r := range w.Rockets {
		s.Rockets[i] = RocketState{
			Kind:     r.Kind,
			Pos:      r.Pos,
			Speed:    r.Speed,
			Size:     r.Size,
			Hue:      r.Hue,
			TargetY:  r.TargetY,
			HasPhoto: r.Photo != nil,
		}
	}
	s.Particles = make([]ParticleState, len(w.Particles))
	for i, p := range w.Particles {
		s.Particles[i] = ParticleState{
			Kind:     p.Kind,
			Pos:      p.Pos,
			Speed:    p.Speed,
			Alpha:    p.Alpha,
			Decay:    p.Decay,
			Hue:      p.Hue,
			Angle:    p.Angle,
			Spin:     p.Spin,
			HasPhoto: p.Photo != nil,
		}
	}
	return
}

func (s *Snapshot) Serialize() []byte {
	data, err := msgpack.Marshal(s)
	Check(err)
	return data
}

func DeserializeSnapshot(data []byte) (s Snapshot, err error) {
	if err = msgpack.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("can't read snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return s, fmt.Errorf("can't read snapshot: we are at SnapshotVersion "+
			"%d and the snapshot was written with SnapshotVersion %d",
			SnapshotVersion, s.Version)
	}
	return
}

// SaveSnapshot writes the current state of w to a file in the working
// directory and returns the name of the file.
func SaveSnapshot(w *World, run Run) string {
	name := fmt.Sprintf("snapshot-%s-%06d.msgpack", run.Id, w.TickIdx)
	snapshot := w.Snapshot(run)
	WriteFile(name, snapshot.Serialize())
	return name
}
