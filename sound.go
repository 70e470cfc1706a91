package main

import "errors"

// Cue identifies the sound of an explosion.
type Cue int64

const (
	// CueSmall is the short thud of a regular rocket.
	CueSmall Cue = iota
	// CueBig is the deep boom of a big rocket followed by a long whoosh.
	CueBig
)

func (c Cue) String() string {
	switch c {
	case CueSmall:
		return "small"
	case CueBig:
		return "big"
	default:
		return "unknown"
	}
}

// SoundPlayer plays explosion cues. Play must return immediately: the
// sound is scheduled and the World never waits for it or learns whether
// it was heard.
type SoundPlayer interface {
	Play(cue Cue)
}

// ErrAudioUnavailable means the platform has no usable audio output. The
// show keeps running without sound.
var ErrAudioUnavailable = errors.New("audio unavailable")
