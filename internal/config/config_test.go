package config

import (
	"flag"
	"image/color"
	"strings"
	"testing"

	"github.com/rook-computer/hexdrift/internal/hexgrid"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	s, err := fromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatal(err)
	}
	if s != Defaults() {
		t.Fatalf("got %+v, want defaults %+v", s, Defaults())
	}
	grid := s.Grid()
	if grid.Radius != 30 || grid.StrokeWidth != 1 || grid.ScrollSpeed != 30 {
		t.Fatalf("unexpected grid defaults %+v", grid)
	}
	if grid.StrokeColor != hexgrid.DefaultStrokeColor {
		t.Fatalf("stroke color %v", grid.StrokeColor)
	}
}

func TestFromLookupOverrides(t *testing.T) {
	s, err := fromLookup(lookupFrom(map[string]string{
		EnvRadius:      "12.5",
		EnvColor:       "#ff000080",
		EnvStrokeWidth: "2",
		EnvSpeed:       "0",
		EnvFPS:         "60",
		EnvStdioLog:    "/tmp/out.log",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{
		Radius:      12.5,
		StrokeColor: color.NRGBA{R: 255, A: 128},
		StrokeWidth: 2,
		ScrollSpeed: 0,
		FPS:         60,
		StdioLog:    "/tmp/out.log",
	}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestFromLookupErrors(t *testing.T) {
	tests := map[string]string{
		EnvRadius:      "big",
		EnvStrokeWidth: "1px",
		EnvSpeed:       "fast",
		EnvColor:       "green",
		EnvFPS:         "0",
	}
	for key, value := range tests {
		_, err := fromLookup(lookupFrom(map[string]string{key: value}))
		if err == nil {
			t.Errorf("%s=%q: expected error", key, value)
			continue
		}
		if !strings.Contains(err.Error(), key) {
			t.Errorf("%s=%q: error %q does not name the variable", key, value, err)
		}
	}
}

func TestRegisterFlagsOverridesEnv(t *testing.T) {
	s, err := fromLookup(lookupFrom(map[string]string{EnvRadius: "12"}))
	if err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.RegisterFlags(fs)
	if err := fs.Parse([]string{"-speed", "45", "-color", "rgba(1,2,3,1)"}); err != nil {
		t.Fatal(err)
	}
	if s.Radius != 12 {
		t.Errorf("radius %v, want env value 12", s.Radius)
	}
	if s.ScrollSpeed != 45 {
		t.Errorf("speed %v, want flag value 45", s.ScrollSpeed)
	}
	if s.StrokeColor != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("color %v", s.StrokeColor)
	}
	if got := fs.Lookup("color").DefValue; got != "rgba(100,250,100,0.22)" {
		t.Errorf("color default shown as %q", got)
	}
}

func TestRegisterFlagsRejectsBadColor(t *testing.T) {
	s := Defaults()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	s.RegisterFlags(fs)
	if err := fs.Parse([]string{"-color", "rgba(1,2,3)"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGridValidates(t *testing.T) {
	s := Defaults()
	s.Radius = 0
	if err := s.Grid().Validate(); err == nil {
		t.Fatal("zero radius passed validation")
	}
}
