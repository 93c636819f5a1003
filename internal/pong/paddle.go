package pong

import "termpong/internal/geom"

// MovePaddle applies both inputs independently, so up and down together cancel out,
// then keeps the whole paddle inside the field. elapsed must not be negative.
func MovePaddle(p Paddle, up, down bool, elapsed, fieldHeight float32) Paddle {
	step := PaddleSpeed * elapsed
	if up {
		p.Pos.Y -= step
	}
	if down {
		p.Pos.Y += step
	}

	p.Pos.Y = geom.Clamp(p.Pos.Y, paddleHalfHeight, fieldHeight-paddleHalfHeight)
	return p
}
