package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"toyrobot/internal/config"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/robot"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("toyrobot: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("toyrobot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: toyrobot [flags] [command file ...]\n")
		fmt.Fprintf(stderr, "Reads commands from the files, or standard input when none are given.\n")
		fs.PrintDefaults()
	}

	def := config.Default()
	cfgPath := fs.String("config", "", "YAML settings `file`")
	width := fs.Int("width", def.Width, "table width in cells")
	height := fs.Int("height", def.Height, "table height in cells")
	requirePlace := fs.Bool("require-place", false, "ignore commands until the first valid PLACE")
	verbose := fs.Bool("v", false, "log ignored lines to standard error")
	show := fs.Bool("show", false, "draw the table to standard error after each command")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := def
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	// flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "require-place":
			cfg.RequirePlace = *requirePlace
		case "v":
			cfg.Verbose = *verbose
		case "show":
			cfg.Show = *show
		}
	})

	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("table %dx%d: %w", cfg.Width, cfg.Height, err)
	}

	opts := []interpreter.Option{interpreter.WithRequirePlace(cfg.RequirePlace)}
	if cfg.Verbose {
		opts = append(opts, interpreter.WithLogger(log.New(stderr, "toyrobot: ", 0)))
	}
	if cfg.Show {
		opts = append(opts, interpreter.WithDisplay(stderr))
	}

	ctx := context.Background()
	if fs.NArg() == 0 {
		in := interpreter.New(robot.New(table, stdout), opts...)
		return in.Run(ctx, stdin)
	}

	// each file drives its own robot
	for _, name := range fs.Args() {
		if err := runFile(ctx, name, table, stdout, opts); err != nil {
			return err
		}
	}
	return nil
}

func runFile(ctx context.Context, name string, table robot.Table, out io.Writer, opts []interpreter.Option) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	in := interpreter.New(robot.New(table, out), opts...)
	if err := in.Run(ctx, f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
