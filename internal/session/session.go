package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"termpong/internal/pong"
	"termpong/internal/wire"
)

// InputSource reports which paddle buttons are held at now. Only the button
// fields of the returned FrameInput are used.
type InputSource interface {
	Sample(now time.Time) pong.FrameInput
}

type Renderer interface {
	Render(state pong.GameState, field pong.Size) error
}

type Recorder interface {
	WriteFrame(in pong.FrameInput) error
}

type Options struct {
	// ID defaults to a fresh UUID.
	ID    string
	Field pong.Size
	FPS   int
	Seed  uint64
	Rules pong.Rules
	// First player to reach WinScore ends the session. 0 never ends.
	WinScore int
}

// Session owns one GameState and is the only thing that steps it.
type Session struct {
	ID string

	opts     Options
	engine   *pong.Engine
	state    pong.GameState
	input    InputSource
	renderer Renderer
	recorder Recorder
	frames   int
}

// New builds a session. input and renderer may be nil when frames are fed
// through Tick and nobody is watching.
func New(opts Options, input InputSource, renderer Renderer) *Session {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	engine := pong.NewEngine(opts.Rules, opts.Seed)

	return &Session{
		ID:       opts.ID,
		opts:     opts,
		engine:   engine,
		state:    engine.NewGameState(opts.Field),
		input:    input,
		renderer: renderer,
	}
}

func (s *Session) SetRecorder(r Recorder) {
	s.recorder = r
}

// Header describes the session for a replay file.
func (s *Session) Header() wire.Header {
	return wire.Header{
		SessionID: s.ID,
		Seed:      s.opts.Seed,
		Rules:     s.opts.Rules,
		Field:     s.opts.Field,
	}
}

func (s *Session) State() pong.GameState {
	return s.state
}

func (s *Session) Frames() int {
	return s.frames
}

// Winner returns 1 or 2 once a player reached the win score, otherwise 0.
func (s *Session) Winner() int {
	if s.opts.WinScore <= 0 {
		return 0
	}
	switch {
	case s.state.Score.Player1 >= s.opts.WinScore:
		return 1
	case s.state.Score.Player2 >= s.opts.WinScore:
		return 2
	}
	return 0
}

// Run steps the game once per tick until ctx is cancelled or someone wins.
func (s *Session) Run(ctx context.Context) (pong.Score, error) {
	slog.Info("starting session", slog.String("session", s.ID), slog.Int("fps", s.opts.FPS),
		slog.Any("walls", s.opts.Rules.Walls), slog.Any("motion", s.opts.Rules.Motion))

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("session stopped", slog.String("session", s.ID), slog.Int("frames", s.frames))
			return s.state.Score, nil

		case now := <-ticker.C:
			in := s.input.Sample(now)
			in.Elapsed = float32(now.Sub(last).Seconds())
			in.Field = s.opts.Field
			last = now

			done, err := s.Tick(in)
			if err != nil {
				return s.state.Score, err
			}
			if done {
				return s.state.Score, nil
			}
		}
	}
}

// Tick advances exactly one frame and reports whether the session is over.
func (s *Session) Tick(in pong.FrameInput) (bool, error) {
	res, err := s.engine.Step(&s.state, in)
	if err != nil {
		return false, fmt.Errorf("frame %d: %w", s.frames, err)
	}
	s.frames++

	if s.recorder != nil {
		if err := s.recorder.WriteFrame(in); err != nil {
			return false, fmt.Errorf("recording frame %d: %w", s.frames, err)
		}
	}

	if res.Exit != pong.ExitNone {
		slog.Info("point scored", slog.String("session", s.ID), slog.Any("exit", res.Exit),
			slog.Int("player1", s.state.Score.Player1), slog.Int("player2", s.state.Score.Player2))
	}
	if res.Hit != 0 {
		slog.Debug("paddle hit", slog.String("session", s.ID), slog.Int("player", res.Hit), slog.Any("velocity", s.state.Ball.Vel))
	}

	if s.renderer != nil {
		if err := s.renderer.Render(s.state, in.Field); err != nil {
			return false, fmt.Errorf("rendering frame %d: %w", s.frames, err)
		}
	}

	if winner := s.Winner(); winner != 0 {
		slog.Info("game over", slog.String("session", s.ID), slog.Int("winner", winner))
		return true, nil
	}
	return false, nil
}
