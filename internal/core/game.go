package core

// Canvas is the drawing surface a frontend hands to the game each frame.
// Sheet names identify textures; a nil src means the whole texture.
type Canvas interface {
	Clear()
	DrawSprite(sheet string, src *Rect, dst Rect)
}

// Game is the contract every frontend drives: one Step then one Render per frame.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Step consumes one frame of input, moves the player and runs the collision sweep.
	Step(in InputFrame) StepResult

	// Render draws the current frame and advances animation bookkeeping.
	Render(dst Canvas)

	// State returns the current game state.
	State() GameState
}
