package constants

import "time"

// Board rendering
const (
	// CellWidth is the number of terminal columns per board cell
	CellWidth = 2

	// BoardOriginX/Y is the top-left terminal cell of the board frame
	BoardOriginX = 2
	BoardOriginY = 3
)

// Glyphs
const (
	GlyphSnakeHead = '█'
	GlyphSnakeBody = '▓'
	GlyphFood      = '●'
	GlyphBorderH   = '─'
	GlyphBorderV   = '│'
	GlyphCornerTL  = '┌'
	GlyphCornerTR  = '┐'
	GlyphCornerBL  = '└'
	GlyphCornerBR  = '┘'
)

// Text
const (
	TitleText       = "S N A K E"
	TitleCredit     = "a terminal snake"
	TitlePlayHint   = "[Enter] Play   [m] Music   [q] Quit"
	BoardHint       = "arrows/hjkl/wasd move   [m] music   [Esc] title"
	GameOverText    = "Game Over!!"
	GameOverHint    = "[Enter] Title   [r] Replay   [q] Quit"
	MusicOnLabel    = "♪ on"
	MusicOffLabel   = "♪ off"
	ScoreLabel      = "Score: %d"
	HighScoreLabel  = "High Score: %d"
	YourScoreLabel  = "Your Score: %d"
	SpectatorsLabel = "watching: %d"
)

// Event loop
const (
	// InputEventBuffer is the capacity of the tcell poll channel
	InputEventBuffer = 64

	// ShutdownTimeout bounds collaborator teardown on exit
	ShutdownTimeout = 2 * time.Second

	// PostRetryInterval paces redelivery of events the screen queue rejected
	PostRetryInterval = 10 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation of the debug log (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)
