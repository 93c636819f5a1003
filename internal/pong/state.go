package pong

import "termpong/internal/geom"

const (
	PaddleHeight = 140
	PaddleWidth  = 25
	PaddleSpeed  = 450

	// Distance from the field edge to a paddle center, before Padding.
	PaddleEdgeOffset = 20
	Padding          = 10

	BallSize  = 16
	BallSpeed = 10

	// Frame rate the per-frame BallSpeed is expressed against.
	ReferenceFPS = 60
)

const (
	paddleHalfHeight = PaddleHeight * 0.5
	paddleHalfWidth  = PaddleWidth * 0.5
	ballRadius       = BallSize * 0.5
)

// Size is the playfield extent. The origin is the top left corner and Y grows downwards.
type Size struct {
	Width  float32
	Height float32
}

func (s Size) Center() geom.Vector {
	return geom.Vector{X: s.Width * 0.5, Y: s.Height * 0.5}
}

type Paddle struct {
	// Center of the paddle.
	Pos geom.Vector
}

type Ball struct {
	Pos geom.Vector
	Vel geom.Vector
}

type Score struct {
	Player1 int
	Player2 int
}

// GameState is owned by whoever drives Engine.Step. Renderers get copies.
type GameState struct {
	Player1 Paddle
	Player2 Paddle
	Ball    Ball
	Score   Score
}

// FrameInput is everything a single step needs from the outside world.
type FrameInput struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool

	// Seconds since the previous frame.
	Elapsed float32
	Field   Size
}

func (s *GameState) check() error {
	vectors := []struct {
		field string
		v     geom.Vector
	}{
		{"player1.pos", s.Player1.Pos},
		{"player2.pos", s.Player2.Pos},
		{"ball.pos", s.Ball.Pos},
		{"ball.vel", s.Ball.Vel},
	}
	for _, f := range vectors {
		if !geom.IsFinite(f.v.X) {
			return &InvalidInputError{Field: f.field + ".x", Value: f.v.X}
		}
		if !geom.IsFinite(f.v.Y) {
			return &InvalidInputError{Field: f.field + ".y", Value: f.v.Y}
		}
	}
	return nil
}
