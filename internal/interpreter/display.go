package interpreter

import (
	"fmt"
	"io"

	"toyrobot/internal/robot"
)

var facingMarks = map[robot.Facing]string{
	robot.North: "^ ",
	robot.East:  "> ",
	robot.South: "v ",
	robot.West:  "< ",
}

// Display draws the table with the robot marked by an arrow, north at the top.
func Display(w io.Writer, r *robot.Robot, last Command) {
	t := r.Table()
	pos, facing, placed := r.Position()

	fmt.Fprintf(w, "%s -> %s\n", last, r)
	for y := t.Corner().Y; y >= 0; y-- {
		for x := 0; x <= t.Corner().X; x++ {
			if placed && pos.X == x && pos.Y == y {
				fmt.Fprint(w, facingMarks[facing])
			} else {
				fmt.Fprint(w, ". ")
			}
		}
		fmt.Fprintln(w)
	}
}
