package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"termpong/internal/geom"
	"termpong/internal/pong"
)

var field = pong.Size{Width: 800, Height: 600}

type recorder struct {
	frames []pong.FrameInput
	err    error
}

func (r *recorder) WriteFrame(in pong.FrameInput) error {
	r.frames = append(r.frames, in)
	return r.err
}

type renderer struct {
	states []pong.GameState
}

func (r *renderer) Render(s pong.GameState, _ pong.Size) error {
	r.states = append(r.states, s)
	return nil
}

type idle struct{}

func (idle) Sample(time.Time) pong.FrameInput { return pong.FrameInput{} }

func TestNew_GeneratesID(t *testing.T) {
	s := New(Options{Field: field, FPS: 60}, nil, nil)
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("expected a UUID session id, got %q", s.ID)
	}
	if s.Header().SessionID != s.ID {
		t.Errorf("header id mismatch")
	}

	fixed := New(Options{ID: "replayed", Field: field, FPS: 60}, nil, nil)
	if fixed.ID != "replayed" {
		t.Errorf("expected provided id, got %q", fixed.ID)
	}
}

func TestTick_RecordsRendersAndEnds(t *testing.T) {
	rec := &recorder{}
	ren := &renderer{}
	s := New(Options{
		Field:    field,
		FPS:      60,
		Rules:    pong.Rules{Motion: pong.MotionPerFrame, Serve: &geom.Vector{X: 1, Y: 0}},
		WinScore: 1,
	}, nil, ren)
	s.SetRecorder(rec)
	s.state.Player2.Pos.Y = 70

	in := pong.FrameInput{Elapsed: 1.0 / 60, Field: field}
	done := false
	for i := 0; i < 100 && !done; i++ {
		var err error
		done, err = s.Tick(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !done || s.Winner() != 1 {
		t.Fatalf("expected player 1 to win, done %v winner %d", done, s.Winner())
	}
	if s.Frames() != 41 {
		t.Errorf("expected 41 frames, got %d", s.Frames())
	}
	if len(rec.frames) != 41 || len(ren.states) != 41 {
		t.Errorf("recorded %d, rendered %d", len(rec.frames), len(ren.states))
	}
	if rec.frames[0] != in {
		t.Errorf("recorded %+v, want %+v", rec.frames[0], in)
	}
	if last := ren.states[len(ren.states)-1]; last.Score != (pong.Score{Player1: 1}) {
		t.Errorf("renderer saw score %v", last.Score)
	}
}

func TestTick_Winner(t *testing.T) {
	s := New(Options{
		Field:    field,
		FPS:      60,
		Rules:    pong.Rules{Motion: pong.MotionPerFrame, Serve: &geom.Vector{X: -1, Y: 0}},
		WinScore: 2,
	}, nil, nil)
	s.state.Player1.Pos.Y = 530

	in := pong.FrameInput{Elapsed: 1.0 / 60, Field: field}
	frames := 0
	for done := false; !done; frames++ {
		var err error
		if done, err = s.Tick(in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if frames > 1000 {
			t.Fatal("game never ended")
		}
	}

	if s.Winner() != 2 {
		t.Errorf("expected player 2 to win, got %d", s.Winner())
	}
	if s.State().Score != (pong.Score{Player2: 2}) {
		t.Errorf("unexpected score %v", s.State().Score)
	}
}

func TestTick_Errors(t *testing.T) {
	s := New(Options{Field: field, FPS: 60}, nil, nil)
	if _, err := s.Tick(pong.FrameInput{Elapsed: -1, Field: field}); !errors.Is(err, pong.ErrInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
	if s.Frames() != 0 {
		t.Errorf("failed frames must not count")
	}

	boom := errors.New("disk full")
	s.SetRecorder(&recorder{err: boom})
	if _, err := s.Tick(pong.FrameInput{Elapsed: 0.01, Field: field}); !errors.Is(err, boom) {
		t.Errorf("expected recorder error, got %v", err)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ren := &renderer{}
	s := New(Options{Field: field, FPS: 200, Seed: 5}, idle{}, ren)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := s.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Frames() == 0 || len(ren.states) != s.Frames() {
		t.Errorf("expected frames to be stepped and rendered, stepped %d rendered %d", s.Frames(), len(ren.states))
	}
}
