package interpreter

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"toyrobot/internal/robot"
)

// Kind identifies a recognised command.
type Kind int

const (
	Place Kind = iota + 1
	Move
	Left
	Right
	Report
)

var kindNames = map[Kind]string{
	Place:  "PLACE",
	Move:   "MOVE",
	Left:   "LEFT",
	Right:  "RIGHT",
	Report: "REPORT",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Command is a parsed line. At and Facing are only set for Place.
type Command struct {
	Kind   Kind
	At     robot.Point
	Facing robot.Facing
}

// Line is the grammar of one command line. Nothing is elided, so the single
// space after PLACE is significant and no other whitespace is allowed.
type Line struct {
	Place  *PlaceArgs `parser:"  @@"`
	Action string     `parser:"| @('MOVE' | 'LEFT' | 'RIGHT' | 'REPORT')"`
}

type PlaceArgs struct {
	X      string `parser:"'PLACE' Space @Int Comma"`
	Y      string `parser:"@Int Comma"`
	Facing string `parser:"@('NORTH' | 'EAST' | 'SOUTH' | 'WEST')"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[A-Z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Space", Pattern: ` `},
})

var parser = participle.MustBuild[Line](participle.Lexer(commandLexer))

// Parse reads one input line. Surrounding whitespace is ignored; anything
// else that is not exactly a command yields ok == false.
func Parse(line string) (cmd Command, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, false
	}
	ast, err := parser.ParseString("", line)
	if err != nil {
		return Command{}, false
	}
	return ast.command()
}

func (l *Line) command() (Command, bool) {
	switch {
	case l.Place != nil:
		x, err := strconv.Atoi(l.Place.X)
		if err != nil {
			return Command{}, false
		}
		y, err := strconv.Atoi(l.Place.Y)
		if err != nil {
			return Command{}, false
		}
		f, ok := robot.ParseFacing(l.Place.Facing)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: Place, At: robot.Point{X: x, Y: y}, Facing: f}, true
	case l.Action == "MOVE":
		return Command{Kind: Move}, true
	case l.Action == "LEFT":
		return Command{Kind: Left}, true
	case l.Action == "RIGHT":
		return Command{Kind: Right}, true
	case l.Action == "REPORT":
		return Command{Kind: Report}, true
	}
	return Command{}, false
}

// Apply runs cmd against r and reports whether the robot acted.
func (c Command) Apply(r *robot.Robot) bool {
	switch c.Kind {
	case Place:
		return r.Place(c.At, c.Facing)
	case Move:
		return r.Move()
	case Left:
		return r.Left()
	case Right:
		return r.Right()
	case Report:
		return r.Report()
	}
	return false
}

func (c Command) String() string {
	if c.Kind == Place {
		return "PLACE " + strconv.Itoa(c.At.X) + "," + strconv.Itoa(c.At.Y) + "," + c.Facing.String()
	}
	return c.Kind.String()
}
