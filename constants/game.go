package constants

import "time"

// Board and clock
const (
	// BoardSize is the width and height of the square toroidal board
	BoardSize = 16

	// TickInterval is the fixed simulation step
	TickInterval = 150 * time.Millisecond
)

// Starting state
const (
	StartFoodX  = 5
	StartFoodY  = 5
	StartSnakeX = 7
	StartSnakeY = 7

	// StartDirectionX/Y is the initial travel direction (rightward)
	StartDirectionX = 1
	StartDirectionY = 0

	// InitialGrowBudget is how many segments the snake may hold before eating
	// Score is snake length minus this value
	InitialGrowBudget = 4
)

// Persistence
const (
	// HighScoreKey is the fixed key the high score is stored under
	HighScoreKey = "HighScore"

	DefaultStoreFile = "vi-snake.json"
)
