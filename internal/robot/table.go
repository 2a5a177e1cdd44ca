package robot

import (
	"errors"
	"fmt"
)

// DefaultCorner is the far corner of the standard 5x5 table.
var DefaultCorner = Point{X: 4, Y: 4}

var ErrTableSize = errors.New("table must be at least 2x2 cells")

// Table is the rectangle from (0,0) to Corner, both ends inclusive.
type Table struct {
	corner Point
}

// NewTable builds a table whose far corner is corner.
// Either dimension smaller than two cells is rejected.
func NewTable(corner Point) (Table, error) {
	if corner.X < 1 || corner.Y < 1 {
		return Table{}, fmt.Errorf("corner %v: %w", corner, ErrTableSize)
	}
	return Table{corner: corner}, nil
}

// MustTable is NewTable that panics on a bad corner. Meant for fixed sizes.
func MustTable(corner Point) Table {
	t, err := NewTable(corner)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table) Corner() Point { return t.corner }

func (t Table) Width() int { return t.corner.X + 1 }

func (t Table) Height() int { return t.corner.Y + 1 }

// Contains reports whether p is on the table.
func (t Table) Contains(p Point) bool {
	return p.X >= 0 && p.X <= t.corner.X && p.Y >= 0 && p.Y <= t.corner.Y
}
