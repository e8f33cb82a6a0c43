package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "stardodge.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.stardodge/stardodge.yaml -> ./configs/stardodge.yaml -> embedded default.
// Files only need to name the keys they override.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports every setting the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.ExitDelay >= 0, "window: exit_delay must not be negative")

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player: size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Step > 0, "player: step must be positive, got %d", c.Player.Step)
	check(c.Player.Width <= c.Window.Width && c.Player.Height <= c.Window.Height,
		"player: %dx%d does not fit the window", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X <= c.Window.Width-c.Player.Width &&
		c.Player.Y >= 0 && c.Player.Y <= c.Window.Height-c.Player.Height,
		"player: start (%d,%d) is outside the window", c.Player.X, c.Player.Y)

	check(c.Obstacles.Count >= 0, "obstacles: count must not be negative")
	check(c.Obstacles.Size > 0, "obstacles: size must be positive, got %d", c.Obstacles.Size)
	check(c.Obstacles.Size < c.Window.Width && c.Obstacles.Size < c.Window.Height,
		"obstacles: size %d must be smaller than the window", c.Obstacles.Size)

	check(c.Animation.Columns > 0 && c.Animation.Rows >= 4,
		"animation: need at least 1 column and 4 rows, got %dx%d", c.Animation.Columns, c.Animation.Rows)
	check(c.Animation.FrameWidth > 0 && c.Animation.FrameHeight > 0,
		"animation: frame size must be positive")
	check(c.Animation.TicksPerStep > 0, "animation: ticks_per_step must be positive")
	check(c.Animation.WrapTo >= 0 && c.Animation.WrapTo < c.Animation.Columns,
		"animation: wrap_to %d out of range [0,%d)", c.Animation.WrapTo, c.Animation.Columns)

	check(c.Terminal.HoldTicks > 0, "terminal: hold_ticks must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stardodge", filename)
}
