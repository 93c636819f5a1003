package ansii

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	plain       ANSI = ""
	bold        ANSI = "\033[1m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

// Offset is a terminal cell, 1 based like the cursor addressing.
type Offset struct {
	X int
	Y int
}

type style struct {
	Reset ANSI
	Plain ANSI
	Bold  ANSI
}

type color struct {
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block string
	Ball  string
	Net   string
}

var (
	Styles = style{Bold: bold, Reset: reset, Plain: plain}
	Colors = color{Red: red, Green: green, Yellow: yellow, Cyan: cyan, White: white}
	Screen = screen{ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks = ascii{Block: "█", Ball: "●", Net: "┊"}
)

func GetTermSize() (width int, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// MakeTermRaw puts stdin into raw mode so single key presses arrive unbuffered.
func MakeTermRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

func RestoreTerm(prev *term.State) error {
	return term.Restore(int(os.Stdin.Fd()), prev)
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (s screen) PlaceCursor(x, y int) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", y, x))
}

// Frame accumulates one screen worth of escape sequences.
// Cells outside Width x Height are clipped.
type Frame struct {
	builder strings.Builder
	Width   int
	Height  int
}

func NewFrame(width, height int) *Frame {
	f := &Frame{Width: width, Height: height}
	f.builder.WriteString(string(Screen.ClearScreen))
	return f
}

func (f *Frame) String() string {
	return f.builder.String()
}

// Draws a filled box of dimensions `height` and `width` at `offset`.
// The `offset` is the top left cell of the box.
func (f *Frame) DrawBox(offset Offset, height int, width int, style ANSI) {
	f.builder.WriteString(string(style))
	for hIdx := range height {
		for wIdx := range width {
			f.drawCell(offset.X+wIdx, offset.Y+hIdx, Blocks.Block)
		}
	}
	f.builder.WriteString(string(Styles.Reset))
}

func (f *Frame) DrawPixelStyle(offset Offset, glyph string, style ANSI) {
	f.builder.WriteString(string(style))
	f.drawCell(offset.X, offset.Y, glyph)
	f.builder.WriteString(string(Styles.Reset))
}

// DrawText writes text starting at offset. Characters past the right edge are dropped.
func (f *Frame) DrawText(offset Offset, text string, style ANSI) {
	f.builder.WriteString(string(style))
	for i, r := range []rune(text) {
		f.drawCell(offset.X+i, offset.Y, string(r))
	}
	f.builder.WriteString(string(Styles.Reset))
}

func (f *Frame) drawCell(x, y int, glyph string) {
	if x < 1 || y < 1 || x > f.Width || y > f.Height {
		return
	}
	f.builder.WriteString(string(Screen.PlaceCursor(x, y)))
	f.builder.WriteString(glyph)
}
