// Package config provides YAML-based configuration loading for boxpush.
package config

// Config is the complete application configuration.
type Config struct {
	Audio   AudioConfig   `yaml:"audio"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Theme   ThemeConfig   `yaml:"theme"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// AudioConfig controls tone playback and the background melody.
type AudioConfig struct {
	Enabled          bool    `yaml:"enabled"`           // false disables the audio device entirely
	Muted            bool    `yaml:"muted"`             // initial mute state, toggled in game
	Volume           float64 `yaml:"volume"`            // 0.0 to 1.0
	Melody           bool    `yaml:"melody"`            // play the background loop
	MelodyIntervalMs int     `yaml:"melody_interval_ms"`
	MelodyNoteMs     int     `yaml:"melody_note_ms"`
}

// LevelsConfig selects the level catalog.
type LevelsConfig struct {
	Path string `yaml:"path"` // empty uses the embedded catalog
}

// StorageConfig locates the completion database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // log destination during full-screen play
}

// ThemeConfig selects the palette and overrides cell glyphs.
// Glyph keys are layout symbols (W, T, B, P, ., *).
type ThemeConfig struct {
	Name   string                 `yaml:"name"` // "default" or "mono"
	Glyphs map[string]GlyphConfig `yaml:"glyphs"`
}

// GlyphConfig describes how one symbol is drawn.
type GlyphConfig struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"` // a core color name, e.g. "bright_yellow"
}

// SSHConfig holds SSH server settings.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKeyPath    string `yaml:"host_key_path"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}
