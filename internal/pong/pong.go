package pong

import (
	"golang.org/x/exp/rand"

	"termpong/internal/geom"
)

// Engine advances a GameState. The only state it keeps is the serve RNG, seeded
// up front so identical seeds and inputs give identical matches.
type Engine struct {
	rules Rules
	rng   *rand.Rand
}

func NewEngine(rules Rules, seed uint64) *Engine {
	return &Engine{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// NewGameState centers both paddles vertically near their edges and serves the
// ball from the middle of the field.
func (e *Engine) NewGameState(field Size) GameState {
	edge := float32(PaddleEdgeOffset + Padding)
	center := field.Center()

	return GameState{
		Player1: Paddle{Pos: geom.Vector{X: edge, Y: center.Y}},
		Player2: Paddle{Pos: geom.Vector{X: field.Width - edge, Y: center.Y}},
		Ball: Ball{
			Pos: center,
			Vel: e.serve(),
		},
	}
}

func (e *Engine) serve() geom.Vector {
	if e.rules.Serve != nil {
		return *e.rules.Serve
	}
	x := e.rng.Float32()
	y := e.rng.Float32()
	return geom.Vector{X: x, Y: y}
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Exit ExitSide
	// Player whose paddle reflected the ball, 0 for none.
	Hit int
}

// Step runs one frame: both paddles, then the ball, then scoring, then paddle
// collisions. On error s is left as it was.
func (e *Engine) Step(s *GameState, in FrameInput) (StepResult, error) {
	if err := validateInput(in); err != nil {
		return StepResult{}, err
	}
	if err := s.check(); err != nil {
		return StepResult{}, err
	}

	factor := e.ballFactor(in.Elapsed)
	if !geom.IsFinite(factor) || !geom.IsFinite(PaddleSpeed*in.Elapsed) {
		return StepResult{}, &InvalidInputError{Field: "elapsed", Value: in.Elapsed}
	}

	next := *s
	next.Player1 = MovePaddle(next.Player1, in.P1Up, in.P1Down, in.Elapsed, in.Field.Height)
	next.Player2 = MovePaddle(next.Player2, in.P2Up, in.P2Down, in.Elapsed, in.Field.Height)

	var res StepResult
	next.Ball, res.Exit = AdvanceBall(next.Ball, factor, in.Field, e.rules.Walls)

	switch res.Exit {
	case ExitLeft:
		next.Score.Player2++
		next.Ball = e.reset(next.Ball, in.Field)
	case ExitRight:
		next.Score.Player1++
		next.Ball = e.reset(next.Ball, in.Field)
	}

	if Collides(next.Ball.Pos, next.Player1.Pos) {
		res.Hit = 1
	} else if Collides(next.Ball.Pos, next.Player2.Pos) {
		res.Hit = 2
	}
	if res.Hit != 0 {
		next.Ball.Vel.X = -next.Ball.Vel.X
	}

	// Large velocities can still overflow to Inf.
	if err := next.check(); err != nil {
		return StepResult{}, err
	}

	*s = next
	return res, nil
}

func (e *Engine) ballFactor(elapsed float32) float32 {
	if e.rules.Motion == MotionPerFrame {
		return 1
	}
	return elapsed * ReferenceFPS
}

func (e *Engine) reset(b Ball, field Size) Ball {
	b.Pos = field.Center()
	if e.rules.Reset == ResetRandomVelocity {
		b.Vel = e.serve()
	}
	return b
}

func validateInput(in FrameInput) error {
	if !geom.IsFinite(in.Elapsed) || in.Elapsed < 0 {
		return &InvalidInputError{Field: "elapsed", Value: in.Elapsed}
	}
	if !geom.IsFinite(in.Field.Width) || in.Field.Width <= 0 {
		return &InvalidInputError{Field: "field.width", Value: in.Field.Width}
	}
	// A field shorter than a paddle has no legal paddle position.
	if !geom.IsFinite(in.Field.Height) || in.Field.Height < PaddleHeight {
		return &InvalidInputError{Field: "field.height", Value: in.Field.Height}
	}
	return nil
}
