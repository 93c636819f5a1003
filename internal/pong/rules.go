package pong

import (
	"fmt"
	"strings"

	"termpong/internal/geom"
)

// WallMode decides what happens at the left and right field edges.
type WallMode int

const (
	// WallScore reports an ExitSide and never reflects horizontally.
	WallScore WallMode = iota
	// WallBounce reflects off every wall and never scores.
	WallBounce
)

// ResetPolicy decides the ball velocity after a point.
type ResetPolicy int

const (
	ResetPreserveVelocity ResetPolicy = iota
	ResetRandomVelocity
)

// Motion decides how the ball displacement relates to elapsed time.
// Paddles are always scaled by elapsed time.
type Motion int

const (
	// MotionDeltaScaled moves the ball BallSpeed units per ReferenceFPS frame worth of time.
	MotionDeltaScaled Motion = iota
	// MotionPerFrame moves the ball BallSpeed units every step regardless of frame time.
	MotionPerFrame
)

type Rules struct {
	Walls  WallMode
	Reset  ResetPolicy
	Motion Motion

	// Serve overrides the random initial (and random reset) velocity when set.
	Serve *geom.Vector
}

var (
	wallModeNames    = map[WallMode]string{WallScore: "score", WallBounce: "bounce"}
	resetPolicyNames = map[ResetPolicy]string{ResetPreserveVelocity: "preserve", ResetRandomVelocity: "random"}
	motionNames      = map[Motion]string{MotionDeltaScaled: "delta", MotionPerFrame: "frame"}
)

func (m WallMode) String() string    { return wallModeNames[m] }
func (p ResetPolicy) String() string { return resetPolicyNames[p] }
func (m Motion) String() string      { return motionNames[m] }

// ParseWallMode accepts the String form. The empty string selects WallScore.
func ParseWallMode(s string) (WallMode, error) {
	return parseName(s, wallModeNames, "wall mode")
}

func ParseResetPolicy(s string) (ResetPolicy, error) {
	return parseName(s, resetPolicyNames, "reset policy")
}

func ParseMotion(s string) (Motion, error) {
	return parseName(s, motionNames, "motion")
}

func parseName[T comparable](s string, names map[T]string, what string) (T, error) {
	var zero T
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zero, nil
	}
	for v, name := range names {
		if name == s {
			return v, nil
		}
	}
	return zero, fmt.Errorf("unknown %s %q", what, s)
}
