package robot

// Facing is the direction the robot points in.
// Values are ordered clockwise so rotation is modular arithmetic.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

var facingDeltas = [...]Point{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// ParseFacing maps an upper-case direction name to its Facing.
func ParseFacing(s string) (Facing, bool) {
	for i, name := range facingNames {
		if name == s {
			return Facing(i), true
		}
	}
	return 0, false
}

func (f Facing) Valid() bool {
	return f >= North && f <= West
}

// Left is the next facing counter-clockwise.
func (f Facing) Left() Facing {
	return (f + 3) % 4
}

// Right is the next facing clockwise.
func (f Facing) Right() Facing {
	return (f + 1) % 4
}

// Delta is the unit step taken by a move in this direction.
func (f Facing) Delta() Point {
	if !f.Valid() {
		return Point{}
	}
	return facingDeltas[f]
}

func (f Facing) String() string {
	if !f.Valid() {
		return "UNKNOWN"
	}
	return facingNames[f]
}
