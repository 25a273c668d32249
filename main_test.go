package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// recordingLogger implements core.Logger by collecting output
type recordingLogger struct {
	lines []string
}

var _ core.Logger = (*recordingLogger)(nil)

func (rl *recordingLogger) Printf(format string, args ...interface{}) {
	rl.lines = append(rl.lines, fmt.Sprintf(format, args...))
}

func (rl *recordingLogger) String() string {
	return strings.Join(rl.lines, "")
}

func defaultConfig() probeConfig {
	return probeConfig{
		Origin:    core.NewPoint(0, 0, -5),
		Direction: core.NewVector(0, 0, 1),
		Scale:     core.NewVector(1, 1, 1),
	}
}

func TestParseTriple(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    [3]float64
		expectError bool
	}{
		{"integers", "0,0,-5", [3]float64{0, 0, -5}, false},
		{"spaces and floats", " 1.5, -2 ,3e1", [3]float64{1.5, -2, 30}, false},
		{"too few", "1,2", [3]float64{}, true},
		{"too many", "1,2,3,4", [3]float64{}, true},
		{"not a number", "1,x,3", [3]float64{}, true},
		{"empty", "", [3]float64{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTriple(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*probeConfig)
		contains []string
	}{
		{
			name:     "unit sphere",
			modify:   func(*probeConfig) {},
			contains: []string{"2 intersection(s)", "t=4", "t=6", "Hit at t=4", "normal Vector (0, 0, -1)"},
		},
		{
			name:     "miss",
			modify:   func(c *probeConfig) { c.Translate = core.NewVector(5, 0, 0) },
			contains: []string{"0 intersection(s)", "No visible hit"},
		},
		{
			name:     "scaled sphere",
			modify:   func(c *probeConfig) { c.Scale = core.NewVector(2, 2, 2) },
			contains: []string{"Hit at t=3"},
		},
		{
			name:     "origin inside",
			modify:   func(c *probeConfig) { c.Origin = core.Origin() },
			contains: []string{"t=-1", "Hit at t=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultConfig()
			tt.modify(&config)
			logger := &recordingLogger{}

			if err := probe(config, logger); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			out := logger.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("Expected output to contain %q, got:\n%s", want, out)
				}
			}
		})
	}
}

func TestProbe_Errors(t *testing.T) {
	singular := defaultConfig()
	singular.Scale = core.NewVector(0, 1, 1)
	if err := probe(singular, &recordingLogger{}); !errors.Is(err, core.ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}

	zero := defaultConfig()
	zero.Direction = core.NewVector(0, 0, 0)
	if err := probe(zero, &recordingLogger{}); !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}
