package pong

import (
	"testing"

	"termpong/internal/geom"
)

func TestCollides(t *testing.T) {
	paddle := geom.Vector{X: 30, Y: 300}

	tests := []struct {
		name     string
		ball     geom.Vector
		expected bool
	}{
		{"center", geom.Vector{X: 30, Y: 300}, true},
		{"inside lower half", geom.Vector{X: 30, Y: 330}, true},
		{"x edge exactly", geom.Vector{X: 42.5, Y: 300}, false},
		{"x edge left exactly", geom.Vector{X: 17.5, Y: 300}, false},
		{"just inside x edge", geom.Vector{X: 42.4, Y: 300}, true},
		{"y edge exactly", geom.Vector{X: 30, Y: 370}, false},
		{"just inside y edge", geom.Vector{X: 30, Y: 369.9}, true},
		{"above paddle", geom.Vector{X: 30, Y: 200}, false},
		{"far right", geom.Vector{X: 400, Y: 300}, false},
		{"corner exactly", geom.Vector{X: 42.5, Y: 370}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.ball, paddle); got != tt.expected {
				t.Errorf("Collides(%v, %v) = %v, want %v", tt.ball, paddle, got, tt.expected)
			}
		})
	}
}
