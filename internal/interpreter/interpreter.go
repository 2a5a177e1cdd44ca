package interpreter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"toyrobot/internal/robot"
)

// Stats counts what a run did with its input.
type Stats struct {
	Lines    int // lines read
	Commands int // lines that parsed as a command and were dispatched
	Ignored  int // lines discarded, including commands skipped by the place gate
}

// Interpreter feeds command lines to a robot.
type Interpreter struct {
	robot        *robot.Robot
	requirePlace bool
	logger       *log.Logger
	display      io.Writer

	placed bool
	stats  Stats
}

type Option func(*Interpreter)

// WithRequirePlace ignores every line other than a valid PLACE until the
// robot has been placed once.
func WithRequirePlace(on bool) Option {
	return func(in *Interpreter) { in.requirePlace = on }
}

// WithLogger logs discarded lines to l.
func WithLogger(l *log.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// WithDisplay draws the table to w after every dispatched command.
func WithDisplay(w io.Writer) Option {
	return func(in *Interpreter) { in.display = w }
}

func New(r *robot.Robot, opts ...Option) *Interpreter {
	in := &Interpreter{robot: r}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Interpreter) Robot() *robot.Robot { return in.robot }

func (in *Interpreter) Stats() Stats { return in.stats }

// Run executes every line of src in order. Bad lines are skipped; the only
// errors returned come from reading src or from ctx.
func (in *Interpreter) Run(ctx context.Context, src io.Reader) error {
	rd := bufio.NewReader(src)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := rd.ReadString('\n')
		if line != "" {
			in.Exec(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("read commands: %w", err)
		}
	}
}

// Exec dispatches one line and reports whether it was run as a command.
func (in *Interpreter) Exec(line string) bool {
	in.stats.Lines++
	cmd, ok := Parse(line)
	if !ok {
		in.ignore(line, "unrecognised")
		return false
	}
	if in.requirePlace && !in.placed && cmd.Kind != Place {
		in.ignore(line, "robot not placed")
		return false
	}

	in.stats.Commands++
	cmd.Apply(in.robot)
	if in.robot.Placed() {
		in.placed = true
	}
	if in.display != nil {
		Display(in.display, in.robot, cmd)
	}
	return true
}

func (in *Interpreter) ignore(line, why string) {
	in.stats.Ignored++
	if in.logger != nil {
		in.logger.Printf("line %d: %s: %q", in.stats.Lines, why, line)
	}
}
