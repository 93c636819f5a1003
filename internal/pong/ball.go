package pong

// ExitSide is reported when the ball leaves the field through a goal line.
type ExitSide int

const (
	ExitNone ExitSide = iota
	ExitLeft
	ExitRight
)

func (e ExitSide) String() string {
	switch e {
	case ExitLeft:
		return "left"
	case ExitRight:
		return "right"
	default:
		return "none"
	}
}

// AdvanceBall moves the ball by Vel * BallSpeed * factor and resolves the walls.
//
// Wall contact only flips the velocity component while the ball is still heading
// into that wall, so a ball lingering in the contact band is reflected once.
// Positions are never corrected.
func AdvanceBall(b Ball, factor float32, field Size, walls WallMode) (Ball, ExitSide) {
	b.Pos = b.Pos.Add(b.Vel.Scale(BallSpeed * factor))

	if b.Pos.Y <= ballRadius && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Y >= field.Height-ballRadius && b.Vel.Y > 0 {
		b.Vel.Y = -b.Vel.Y
	}

	switch walls {
	case WallBounce:
		if b.Pos.X <= ballRadius && b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X
		}
		if b.Pos.X >= field.Width-ballRadius && b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X
		}
	default:
		if b.Pos.X < 0 {
			return b, ExitLeft
		}
		if b.Pos.X > field.Width {
			return b, ExitRight
		}
	}

	return b, ExitNone
}
