package pong

import "termpong/internal/geom"

// Collides is an axis aligned box test of the ball center against a paddle.
// Touching an edge exactly is not a hit.
func Collides(ball, paddle geom.Vector) bool {
	return geom.Abs(ball.X-paddle.X) < paddleHalfWidth &&
		geom.Abs(ball.Y-paddle.Y) < paddleHalfHeight
}
