package rules

// GameStatus is the lifecycle state of a session.
type GameStatus string

const (
	// GameStatusNotStarted represents a session waiting for its first direction
	GameStatusNotStarted GameStatus = "not-started"
	// GameStatusRunning represents a session whose ticks advance the snake
	GameStatusRunning GameStatus = "running"
	// GameStatusPaused represents a running session that is temporarily halted
	GameStatusPaused GameStatus = "paused"
	// GameStatusOver represents a session that ended, it can not be resumed
	GameStatusOver GameStatus = "over"
)

// IsOver checks if the status is terminal.
func (s GameStatus) IsOver() bool {
	return s == GameStatusOver
}

// Started checks if the session has left the not-started state.
func (s GameStatus) Started() bool {
	return s != GameStatusNotStarted && s != ""
}
