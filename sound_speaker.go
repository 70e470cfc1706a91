package main

import (
	"fmt"
	"github.com/gopxl/beep/speaker"
	"time"
)

// SpeakerSound plays cues through the beep speaker. It is what the
// terminal front-end uses, since there is no ebiten there.
type SpeakerSound struct {
	synth    *Synth
	settings *SettingsStore
}

// NewSpeakerSound initializes the speaker. The error wraps
// ErrAudioUnavailable if the machine has no usable audio device.
func NewSpeakerSound(synth *Synth, settings *SettingsStore) (*SpeakerSound, error) {
	rate := synth.Format().SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAudioUnavailable, err)
	}
	return &SpeakerSound{synth: synth, settings: settings}, nil
}

func (s *SpeakerSound) Play(cue Cue) {
	if s.settings.Muted() {
		return
	}
	speaker.Play(s.synth.Streamer(cue, s.settings.Volume()))
}

func (s *SpeakerSound) Close() {
	speaker.Close()
}
