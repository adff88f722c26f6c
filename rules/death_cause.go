package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the snake's head runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseBoardFull is when the snake fills the board and no cell is left for food
	DeathCauseBoardFull = "board-full"
)
