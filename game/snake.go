package game

// Handle is an opaque token a renderer hands out for a drawable entity. The
// zero Handle means the entity is not registered with a renderer.
type Handle uint64

// Segment is one cell of the snake's body.
type Segment struct {
	Point
	Handle Handle
}

// Snake is an ordered body, head first.
type Snake struct {
	Body []*Segment
}

// NewSnake creates a single segment snake at p.
func NewSnake(p Point) *Snake {
	return &Snake{Body: []*Segment{{Point: p}}}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Body)
}

// Head returns the first segment in the body
func (s *Snake) Head() *Segment {
	if s.Len() == 0 {
		return nil
	}
	return s.Body[0]
}

// Tail returns the last segment in the body
func (s *Snake) Tail() *Segment {
	if s.Len() == 0 {
		return nil
	}
	return s.Body[len(s.Body)-1]
}

// Points returns a copy of the body positions, head first.
func (s *Snake) Points() []Point {
	points := make([]Point, 0, s.Len())
	if s == nil {
		return points
	}
	for _, seg := range s.Body {
		points = append(points, seg.Point)
	}
	return points
}

// Move shifts every body segment onto the one ahead of it, walking from the
// tail so no position is read after it was overwritten, then steps the head
// in the given direction. It returns the position the tail vacated.
func (s *Snake) Move(d Direction) Point {
	h := s.Head()
	if h == nil {
		return Point{}
	}
	vacated := s.Tail().Point
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i].Point = s.Body[i-1].Point
	}
	h.Point = h.Point.Step(d)
	return vacated
}

// Grow appends a segment to the tail.
func (s *Snake) Grow(seg *Segment) {
	s.Body = append(s.Body, seg)
}
