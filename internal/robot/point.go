package robot

import "fmt"

// Point is a cell coordinate on the table. X grows to the east, Y to the north.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies on t.
func (p Point) In(t Table) bool {
	return t.Contains(p)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
