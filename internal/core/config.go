package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // World width in pixels
	ScreenH  int   // World height in pixels
	TickRate int   // Frames per second for frontends without vsync pacing
	Seed     int64 // RNG seed for obstacle placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// EndReason records why a run stopped.
type EndReason int

const (
	EndNone      EndReason = iota
	EndQuit                // window closed or interrupt
	EndEscape              // Escape pressed
	EndCollision           // player touched an obstacle
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndQuit:
		return "quit"
	case EndEscape:
		return "escape"
	case EndCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	GameOver bool      // Whether the run has ended
	Reason   EndReason // Why it ended; EndNone while running
	Ticks    int       // Steps taken since Reset
}

// Contact is a single obstacle hit found by a collision sweep.
type Contact struct {
	Index int  // Obstacle index
	Side  Side // Side of the obstacle that was struck
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State    GameState
	Contacts []Contact // Obstacles touched this frame, in obstacle order
}
