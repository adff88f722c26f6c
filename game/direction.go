package game

// Direction is one of the four movement directions.
type Direction string

// Movement directions. The empty Direction means none was set.
const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Input keys understood by the engine.
const (
	KeyUp    = "ArrowUp"
	KeyDown  = "ArrowDown"
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
	KeyPause = " "
)

var inputDirections = map[string]Direction{
	KeyUp:    Up,
	KeyDown:  Down,
	KeyLeft:  Left,
	KeyRight: Right,
}

var opposites = map[Direction]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// DirectionFromInput maps an arrow key to its direction. Any other key
// yields false.
func DirectionFromInput(key string) (Direction, bool) {
	d, ok := inputDirections[key]
	return d, ok
}

// IsPauseInput reports whether key toggles pause.
func IsPauseInput(key string) bool {
	return key == KeyPause
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	_, ok := opposites[d]
	return ok
}

// Opposite returns the direction that reverses d, or "" for an invalid d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// IsOppositeOf reports whether d reverses other.
func (d Direction) IsOppositeOf(other Direction) bool {
	return d.Valid() && opposites[other] == d
}
