package renderer

import (
	"fmt"
	"io"
	"math"

	"termpong/internal/ansii"
	"termpong/internal/geom"
	"termpong/internal/pong"
)

// Terminal draws game states to an ANSI terminal sized at render time.
type Terminal struct {
	out  io.Writer
	size func() (int, int, error)
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out, size: ansii.GetTermSize}
}

func (t *Terminal) Render(state pong.GameState, field pong.Size) error {
	width, height, err := t.size()
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}
	_, err = io.WriteString(t.out, Draw(state, field, width, height))
	return err
}

// Draw lays the playfield over a width x height cell grid.
func Draw(state pong.GameState, field pong.Size, width, height int) string {
	frame := ansii.NewFrame(width, height)

	mid := width/2 + 1
	for row := 1; row <= height; row += 2 {
		frame.DrawPixelStyle(ansii.Offset{X: mid, Y: row}, ansii.Blocks.Net, ansii.Styles.Plain)
	}

	paddleRows := max(1, int(math.Round(float64(pong.PaddleHeight/field.Height)*float64(height))))
	for _, p := range []pong.Paddle{state.Player1, state.Player2} {
		top := toCell(geom.Vector{X: p.Pos.X, Y: p.Pos.Y - pong.PaddleHeight/2}, field, width, height)
		frame.DrawBox(top, paddleRows, 1, ansii.Colors.Cyan)
	}

	frame.DrawPixelStyle(toCell(state.Ball.Pos, field, width, height), ansii.Blocks.Ball, ansii.Colors.Yellow)

	score := fmt.Sprintf("%d    %d", state.Score.Player1, state.Score.Player2)
	frame.DrawText(ansii.Offset{X: mid - len(score)/2, Y: 1}, score, ansii.Styles.Bold)

	return frame.String()
}

// toCell maps a playfield position to the terminal cell containing it.
func toCell(p geom.Vector, field pong.Size, width, height int) ansii.Offset {
	x := math.Floor(float64(p.X / field.Width * float32(width)))
	y := math.Floor(float64(p.Y / field.Height * float32(height)))
	return ansii.Offset{X: int(x) + 1, Y: int(y) + 1}
}
