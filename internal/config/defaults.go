package config

import (
	_ "embed"
)

//go:embed defaults/boxpush.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Audio: AudioConfig{
			Enabled:          true,
			Muted:            false,
			Volume:           0.6,
			Melody:           true,
			MelodyIntervalMs: 800,
			MelodyNoteMs:     400,
		},
		Storage: StorageConfig{
			Path: "~/.boxpush/records.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.boxpush/boxpush.log",
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		SSH: SSHConfig{
			Address:        ":23235",
			IdleTimeoutMin: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
