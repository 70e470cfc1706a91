package main

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/quasilyte/gdata/v2"
	"log"
	"math"
)

// Settings are the user's choices that survive a restart.
type Settings struct {
	Muted  bool    `yaml:"Muted"`
	Volume float64 `yaml:"Volume"`
}

func DefaultSettings() Settings {
	return Settings{Muted: false, Volume: 0.8}
}

const (
	settingsObject   = "settings"
	settingsProperty = "user"
	volumeStep       = 0.1
)

// SettingsStore keeps the Settings in memory and persists them with gdata.
// A store without a gdata manager works in memory only.
type SettingsStore struct {
	data     *gdata.Manager
	settings Settings
}

// OpenSettingsStore opens the persistent storage of the app. If the storage
// can't be opened the problem is logged and an in-memory store is returned.
func OpenSettingsStore(appName string) *SettingsStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[settings] can't open storage, settings won't be saved: %v", err)
		m = nil
	}
	return NewSettingsStore(m)
}

func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	s := &SettingsStore{data: m, settings: DefaultSettings()}
	if err := s.Load(); err != nil {
		log.Printf("[settings] using defaults: %v", err)
	}
	return s
}

func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.data == nil || !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	s.settings = loaded
	return nil
}

func (s *SettingsStore) Save() error {
	if s.data == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *SettingsStore) Settings() Settings {
	return s.settings
}

func (s *SettingsStore) Muted() bool {
	return s.settings.Muted
}

// Volume is the volume at which cues should be played, 0 when muted.
func (s *SettingsStore) Volume() float64 {
	if s.settings.Muted {
		return 0
	}
	return s.settings.Volume
}

func (s *SettingsStore) ToggleMute() {
	s.settings.Muted = !s.settings.Muted
	s.save()
}

// ChangeVolume moves the volume up (steps > 0) or down (steps < 0).
func (s *SettingsStore) ChangeVolume(steps int) {
	s.settings.Volume = clampVolume(s.settings.Volume + float64(steps)*volumeStep)
	s.save()
}

func (s *SettingsStore) save() {
	if err := s.Save(); err != nil {
		log.Printf("[settings] %v", err)
	}
}

func clampVolume(volume float64) float64 {
	// Avoid 0.30000000000000004 in the saved file.
	volume = math.Round(volume*100) / 100
	return math.Max(0, math.Min(1, volume))
}
