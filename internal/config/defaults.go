package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/stardodge.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     800,
			Height:    600,
			Title:     "Star Dodge",
			VSync:     true,
			ExitDelay: time.Second,
		},
		Player: Player{
			X:      0,
			Y:      0,
			Width:  32,
			Height: 64,
			Step:   4,
		},
		Obstacles: Obstacles{
			Count: 10,
			Size:  64,
		},
		Animation: Animation{
			Columns:      6,
			Rows:         4,
			FrameWidth:   32,
			FrameHeight:  64,
			TicksPerStep: 5,
			WrapTo:       1,
		},
		Assets: Assets{
			Star:     "imgs/star.png",
			Man:      "imgs/man.png",
			ColorKey: RGB{R: 0xFF, G: 0xFF, B: 0xFF},
		},
		Terminal: Terminal{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
