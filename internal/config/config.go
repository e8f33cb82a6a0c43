// Package config provides YAML-based configuration loading for star-dodge.
package config

import "time"

// Config contains all tunables for the game and its frontends.
type Config struct {
	Window    Window    `yaml:"window"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Animation Animation `yaml:"animation"`
	Assets    Assets    `yaml:"assets"`
	Terminal  Terminal  `yaml:"terminal"`
}

// Window defines the playfield and window behavior.
type Window struct {
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	Title     string        `yaml:"title"`
	VSync     bool          `yaml:"vsync"`
	ExitDelay time.Duration `yaml:"exit_delay"` // Hold on the final frame before teardown
}

// Player defines the player's box and movement step.
type Player struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Step   int `yaml:"step"` // Pixels moved per frame
}

// Obstacles defines the static star field.
type Obstacles struct {
	Count int `yaml:"count"`
	Size  int `yaml:"size"`
}

// Animation describes the player's sprite sheet grid and walk cycle timing.
type Animation struct {
	Columns      int `yaml:"columns"`        // Walk-cycle steps per row
	Rows         int `yaml:"rows"`           // One row per facing direction
	FrameWidth   int `yaml:"frame_width"`    // Source frame width
	FrameHeight  int `yaml:"frame_height"`   // Source frame height
	TicksPerStep int `yaml:"ticks_per_step"` // Renders between step advances
	WrapTo       int `yaml:"wrap_to"`        // Step index used after the last column
}

// Assets lists the sprite image files.
type Assets struct {
	Star     string `yaml:"star"`
	Man      string `yaml:"man"`
	ColorKey RGB    `yaml:"color_key"` // Pixels of this color become transparent
}

// RGB is an opaque 8-bit color.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Terminal tunes the terminal frontend.
type Terminal struct {
	// HoldTicks is how long a key press counts as held, since terminals do not
	// report key releases.
	HoldTicks int `yaml:"hold_ticks"`
}
