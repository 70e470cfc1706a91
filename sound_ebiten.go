package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"log"
)

// EbitenSound plays cues through ebiten's audio context. ebiten allows a
// single audio context per process, so there should be only one of these.
type EbitenSound struct {
	context  *audio.Context
	pcm      map[Cue][]byte
	settings *SettingsStore
	disabled bool
}

func NewEbitenSound(synth *Synth, settings *SettingsStore) *EbitenSound {
	s := &EbitenSound{
		context:  audio.NewContext(int(synth.Format().SampleRate)),
		pcm:      map[Cue][]byte{},
		settings: settings,
	}
	for _, cue := range []Cue{CueSmall, CueBig} {
		s.pcm[cue] = synth.PCM(cue)
	}
	return s
}

func (s *EbitenSound) Play(cue Cue) {
	if s.disabled || s.settings.Muted() {
		return
	}
	if err := s.context.Err(); err != nil {
		log.Printf("[sound] %v", fmt.Errorf("%w: %w", ErrAudioUnavailable, err))
		s.disabled = true
		return
	}
	// The context keeps a player alive for as long as it is playing.
	player := s.context.NewPlayerFromBytes(s.pcm[cue])
	player.SetVolume(s.settings.Volume())
	player.Play()
}
