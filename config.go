package main

// Config holds everything that can be tuned without recompiling. The
// developer config overrides the release one completely, it is not merged.
type Config struct {
	// Seed of the show. 0 means a different show on every run.
	Seed        int64  `yaml:"Seed"`
	PhotoList   string `yaml:"PhotoList"`
	PhotosDir   string `yaml:"PhotosDir"`
	SampleRate  int    `yaml:"SampleRate"`
	WindowTitle string `yaml:"WindowTitle"`
	Fullscreen  bool   `yaml:"Fullscreen"`
	Params      Params `yaml:"Params"`
}

func DefaultConfig() (c Config) {
	c.PhotoList = "data/photos.json"
	c.PhotosDir = "data/photos"
	c.SampleRate = 44100
	c.WindowTitle = "Fireworks"
	c.Params = DefaultParams()
	return
}

// LoadConfig reads the config from fsys. Values missing from the file keep
// their defaults. Invalid params are reported through Check, since the show
// can't start with them.
func LoadConfig(fsys FS, devModeEnabled bool) (c Config) {
	c = DefaultConfig()
	if devModeEnabled {
		LoadYAML(fsys, "data/config-dev.yaml", &c)
	} else {
		LoadYAML(fsys, "data/config.yaml", &c)
	}
	Check(c.Params.Validate())
	return
}
