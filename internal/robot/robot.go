package robot

import (
	"fmt"
	"io"
)

// Robot is a toy robot on a table. It starts off the table and only
// enters it through a valid Place. Every operation is a no-op when it
// would break that rule; the bool results report whether anything happened.
type Robot struct {
	table  Table
	out    io.Writer
	pos    Point
	facing Facing
	placed bool
}

// New returns an unplaced robot on t that writes reports to out.
// The zero Table stands for the default 5x5 table.
func New(t Table, out io.Writer) *Robot {
	if t == (Table{}) {
		t = MustTable(DefaultCorner)
	}
	if out == nil {
		out = io.Discard
	}
	return &Robot{table: t, out: out}
}

func (r *Robot) Table() Table { return r.table }

func (r *Robot) Placed() bool { return r.placed }

// Position returns where the robot is and which way it faces.
// ok is false before the first successful Place.
func (r *Robot) Position() (p Point, f Facing, ok bool) {
	return r.pos, r.facing, r.placed
}

func (r *Robot) Place(p Point, f Facing) bool {
	if !r.table.Contains(p) || !f.Valid() {
		return false
	}
	r.pos, r.facing, r.placed = p, f, true
	return true
}

func (r *Robot) Left() bool {
	if !r.placed {
		return false
	}
	r.facing = r.facing.Left()
	return true
}

func (r *Robot) Right() bool {
	if !r.placed {
		return false
	}
	r.facing = r.facing.Right()
	return true
}

// Move steps one cell forward. A step off the table is dropped.
func (r *Robot) Move() bool {
	if !r.placed {
		return false
	}
	next := r.pos.Add(r.facing.Delta())
	if !r.table.Contains(next) {
		return false
	}
	r.pos = next
	return true
}

// Report writes "X,Y,FACING" to the report sink.
func (r *Robot) Report() bool {
	if !r.placed {
		return false
	}
	_, err := fmt.Fprintf(r.out, "%d,%d,%s\n", r.pos.X, r.pos.Y, r.facing)
	return err == nil
}

func (r *Robot) String() string {
	if !r.placed {
		return "unplaced"
	}
	return fmt.Sprintf("%d,%d,%s", r.pos.X, r.pos.Y, r.facing)
}
