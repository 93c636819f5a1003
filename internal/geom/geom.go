package geom

import "math"

type Vector struct {
	X float32
	Y float32
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Finite reports whether neither component is NaN or infinite.
func (v Vector) Finite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func Abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// Clamp saturates value into [lo, hi]. lo wins when the range is inverted.
func Clamp(value, lo, hi float32) float32 {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}
