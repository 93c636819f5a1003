package client

import (
	"sync"
	"time"

	"termpong/internal/pong"
	"termpong/internal/renderer"
)

// Terminals only report key presses, never releases. A key counts as held
// for DefaultHold after its last press, which covers the auto repeat delay.
const DefaultHold = 250 * time.Millisecond

// Keyboard is written by the input goroutine and sampled by the frame loop.
type Keyboard struct {
	mu      sync.Mutex
	hold    time.Duration
	pressed map[renderer.UiAction]time.Time
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		hold:    hold,
		pressed: make(map[renderer.UiAction]time.Time),
	}
}

func (k *Keyboard) Press(action renderer.UiAction, at time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[action] = at
}

// Sample maps held keys to paddle buttons: W/S for player 1, arrows or I/K for player 2.
func (k *Keyboard) Sample(now time.Time) pong.FrameInput {
	k.mu.Lock()
	defer k.mu.Unlock()

	return pong.FrameInput{
		P1Up:   k.held(renderer.Up, now),
		P1Down: k.held(renderer.Down, now),
		P2Up:   k.held(renderer.UpArrow, now) || k.held(renderer.UpAlt, now),
		P2Down: k.held(renderer.DownArrow, now) || k.held(renderer.DownAlt, now),
	}
}

func (k *Keyboard) held(action renderer.UiAction, now time.Time) bool {
	at, ok := k.pressed[action]
	return ok && !now.Before(at) && now.Sub(at) < k.hold
}
