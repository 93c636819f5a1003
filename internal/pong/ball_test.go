package pong

import (
	"testing"

	"termpong/internal/geom"
)

var field = Size{Width: 800, Height: 600}

func TestAdvanceBall_Moves(t *testing.T) {
	b := Ball{Pos: geom.Vector{X: 400, Y: 300}, Vel: geom.Vector{X: 1, Y: -0.5}}

	b, exit := AdvanceBall(b, 1, field, WallScore)
	if exit != ExitNone {
		t.Errorf("unexpected exit %v", exit)
	}
	if b.Pos != (geom.Vector{X: 410, Y: 295}) {
		t.Errorf("unexpected position %v", b.Pos)
	}

	b, _ = AdvanceBall(b, 0.5, field, WallScore)
	if b.Pos != (geom.Vector{X: 415, Y: 292.5}) {
		t.Errorf("unexpected position after half factor %v", b.Pos)
	}
}

func TestAdvanceBall_WallReflectsOnce(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
	}{
		{"top", Ball{Pos: geom.Vector{X: 400, Y: 5}, Vel: geom.Vector{X: 0, Y: -0.1}}},
		{"bottom", Ball{Pos: geom.Vector{X: 400, Y: 595}, Vel: geom.Vector{X: 0, Y: 0.1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.ball.Vel.Y

			b, _ := AdvanceBall(tt.ball, 1, field, WallScore)
			if b.Vel.Y != -original {
				t.Fatalf("expected velocity flip to %f, got %f", -original, b.Vel.Y)
			}

			// Still inside the contact band on the next frame.
			b, _ = AdvanceBall(b, 1, field, WallScore)
			if b.Vel.Y != -original {
				t.Errorf("velocity flipped back while leaving the wall: %f", b.Vel.Y)
			}
		})
	}
}

func TestAdvanceBall_ReflectionDoesNotClamp(t *testing.T) {
	b := Ball{Pos: geom.Vector{X: 400, Y: 4}, Vel: geom.Vector{X: 0, Y: -1}}
	b, _ = AdvanceBall(b, 1, field, WallScore)
	if b.Pos.Y != -6 {
		t.Errorf("expected ball to overshoot to -6, got %f", b.Pos.Y)
	}
	if b.Vel.Y != 1 {
		t.Errorf("expected reflected velocity 1, got %f", b.Vel.Y)
	}
}

func TestAdvanceBall_Exits(t *testing.T) {
	tests := []struct {
		name     string
		ball     Ball
		expected ExitSide
	}{
		{"left", Ball{Pos: geom.Vector{X: 5, Y: 300}, Vel: geom.Vector{X: -1}}, ExitLeft},
		{"right", Ball{Pos: geom.Vector{X: 795, Y: 300}, Vel: geom.Vector{X: 1}}, ExitRight},
		{"on left line", Ball{Pos: geom.Vector{X: 10, Y: 300}, Vel: geom.Vector{X: -1}}, ExitNone},
		{"on right line", Ball{Pos: geom.Vector{X: 790, Y: 300}, Vel: geom.Vector{X: 1}}, ExitNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, exit := AdvanceBall(tt.ball, 1, field, WallScore)
			if exit != tt.expected {
				t.Errorf("expected exit %v, got %v", tt.expected, exit)
			}
			if b.Vel != tt.ball.Vel {
				t.Errorf("scoring walls must not reflect, velocity %v", b.Vel)
			}
		})
	}
}

func TestAdvanceBall_BounceMode(t *testing.T) {
	b := Ball{Pos: geom.Vector{X: 5, Y: 300}, Vel: geom.Vector{X: -1}}

	b, exit := AdvanceBall(b, 1, field, WallBounce)
	if exit != ExitNone {
		t.Errorf("bounce mode reported exit %v", exit)
	}
	if b.Vel.X != 1 {
		t.Errorf("expected horizontal reflection, got %f", b.Vel.X)
	}

	b = Ball{Pos: geom.Vector{X: 795, Y: 300}, Vel: geom.Vector{X: 1}}
	b, exit = AdvanceBall(b, 1, field, WallBounce)
	if exit != ExitNone || b.Vel.X != -1 {
		t.Errorf("expected right wall reflection, got exit %v vel %f", exit, b.Vel.X)
	}
}
