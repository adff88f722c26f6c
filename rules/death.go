package rules

import "github.com/battlesnakeio/snake/game"

// checkForDeath looks at the snake after it moved and reports why it died, if
// it did. Leaving the board takes precedence over running into the body.
func checkForDeath(frame *game.Frame) (string, bool) {
	head := frame.Snake.Head()
	if head == nil {
		return "", false
	}
	if deathByOutOfBounds(head.Point, frame.Size) {
		return DeathCauseWallCollision, true
	}
	for i, b := range frame.Snake.Body {
		if i == 0 {
			continue
		}
		if deathByBodyCollision(head.Point, b.Point) {
			return DeathCauseSnakeSelfCollision, true
		}
	}
	return "", false
}

func deathByBodyCollision(head, body game.Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head game.Point, size int32) bool {
	return IsOutOfBounds(head, size)
}
