package client

import (
	"strings"
	"testing"
	"time"

	"termpong/internal/pong"
	"termpong/internal/renderer"
)

func TestKeyboard_Sample(t *testing.T) {
	start := time.Now()
	k := NewKeyboard(100 * time.Millisecond)

	k.Press(renderer.Up, start)
	k.Press(renderer.DownArrow, start)
	k.Press(renderer.UpAlt, start.Add(-time.Second))

	tests := []struct {
		name     string
		at       time.Time
		expected pong.FrameInput
	}{
		{"same instant", start, pong.FrameInput{P1Up: true, P2Down: true}},
		{"within hold", start.Add(99 * time.Millisecond), pong.FrameInput{P1Up: true, P2Down: true}},
		{"hold expired", start.Add(100 * time.Millisecond), pong.FrameInput{}},
		{"before press", start.Add(-time.Millisecond), pong.FrameInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.Sample(tt.at); got != tt.expected {
				t.Errorf("Sample = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	k := NewKeyboard(time.Hour)
	quits := 0

	readInput(strings.NewReader("w\033[Bq"), k, func() { quits++ })

	if quits != 1 {
		t.Errorf("expected a single quit, got %d", quits)
	}
	in := k.Sample(time.Now())
	if !in.P1Up || !in.P2Down || in.P1Down || in.P2Up {
		t.Errorf("unexpected held keys %+v", in)
	}
}

func TestReadInput_QuitsOnEOF(t *testing.T) {
	quit := make(chan struct{})
	go readInput(strings.NewReader("s"), NewKeyboard(time.Hour), func() { close(quit) })

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("readInput did not quit on EOF")
	}
}
