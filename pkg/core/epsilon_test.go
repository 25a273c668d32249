package core

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected bool
	}{
		{"identical", 1.5, 1.5, true},
		{"half epsilon apart", 0, Epsilon / 2, true},
		{"exactly epsilon apart", 0, Epsilon, false},
		{"exactly epsilon apart negative", Epsilon, 0, false},
		{"double epsilon apart", -3, -3 + 2*Epsilon, false},
		{"far apart", 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal(%g, %g) = %t, expected %t", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestEqual_Float32(t *testing.T) {
	if !Equal(float32(0.1), float32(0.1000001)) {
		t.Error("Expected float32 values within epsilon to compare equal")
	}
	if Equal(float32(0.1), float32(0.2)) {
		t.Error("Expected distant float32 values to compare unequal")
	}
}
