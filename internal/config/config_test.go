package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"toyrobot/internal/robot"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Corner() != robot.DefaultCorner {
		t.Errorf("default corner %v", c.Corner())
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		s    string
		want Config
		fail bool
	}{
		{s: "", want: Config{Width: 5, Height: 5}},
		{s: "width: 8\n", want: Config{Width: 8, Height: 5}},
		{s: "width: 2\nheight: 3\nrequire_place: true\nverbose: true\nshow: true\n",
			want: Config{Width: 2, Height: 3, RequirePlace: true, Verbose: true, Show: true}},
		{s: "width: 1\n", fail: true},
		{s: "height: 0\n", fail: true},
		{s: "depth: 3\n", fail: true},
		{s: "width: [\n", fail: true},
		{s: "width: -9223372036854775808\n", fail: true},
		{s: "height: -9223372036854775808\n", fail: true},
	}
	for _, c := range cases {
		got, err := Parse([]byte(c.s))
		if c.fail {
			if err == nil {
				t.Errorf("Parse(%q) did not fail", c.s)
			}
			if got != (Config{}) {
				t.Errorf("Parse(%q) = %+v on error", c.s, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed with %s", c.s, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", c.s, diff)
		}
	}
}

func TestValidateSize(t *testing.T) {
	for _, c := range []Config{
		{Width: 1, Height: 5},
		{Width: 5, Height: 0},
		{Width: math.MinInt, Height: 5},
		{Width: 5, Height: math.MinInt},
	} {
		if err := c.Validate(); !errors.Is(err, robot.ErrTableSize) {
			t.Errorf("%dx%d: Validate() = %v, want ErrTableSize", c.Width, c.Height, err)
		}
		if _, err := c.Table(); !errors.Is(err, robot.ErrTableSize) {
			t.Errorf("%dx%d: Table() = %v, want ErrTableSize", c.Width, c.Height, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	if err := os.WriteFile(path, []byte("width: 6\nheight: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Corner() != (robot.Point{X: 5, Y: 3}) {
		t.Errorf("corner %v", c.Corner())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v", err)
	}
}
