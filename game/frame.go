package game

// Food is the single food marker on the board.
type Food struct {
	Point
	Handle Handle
}

// Frame is the full mutable game state: board size, snake and food.
type Frame struct {
	Turn  int64
	Size  int32
	Snake *Snake
	Food  *Food
}

// Cells returns the number of cells on the board.
func (f *Frame) Cells() int {
	return int(f.Size) * int(f.Size)
}

// Handles lists every registered renderer handle in the frame, snake first.
func (f *Frame) Handles() []Handle {
	handles := []Handle{}
	if f.Snake != nil {
		for _, seg := range f.Snake.Body {
			if seg.Handle != 0 {
				handles = append(handles, seg.Handle)
			}
		}
	}
	if f.Food != nil && f.Food.Handle != 0 {
		handles = append(handles, f.Food.Handle)
	}
	return handles
}
