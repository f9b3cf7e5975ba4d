package core

// RuntimeConfig describes the terminal the game runs in.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // Background melody seed, 0 means time-based
}

// DefaultConfig returns an 80x24 terminal with a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
