// Package wire encodes simulation state and replays in the protobuf wire format.
//
// Field numbers are stable; unknown fields are skipped on decode.
//
//	message Vector    { fixed32 x = 1; fixed32 y = 2; }
//	message GameState {
//	  Vector player1 = 1; Vector player2 = 2;
//	  Vector ball_pos = 3; Vector ball_vel = 4;
//	  uint64 score1 = 5; uint64 score2 = 6;
//	}
package wire

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"termpong/internal/geom"
	"termpong/internal/pong"
)

var ErrMalformed = errors.New("malformed wire message")

const (
	vectorX protowire.Number = 1
	vectorY protowire.Number = 2
)

const (
	statePlayer1 protowire.Number = iota + 1
	statePlayer2
	stateBallPos
	stateBallVel
	stateScore1
	stateScore2
)

func appendFloat(b []byte, num protowire.Number, f float32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(f))
}

func appendVector(b []byte, num protowire.Number, v geom.Vector) []byte {
	var inner []byte
	inner = appendFloat(inner, vectorX, v.X)
	inner = appendFloat(inner, vectorY, v.Y)

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// field is a single decoded field. Only the member matching typ is set.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	fixed  uint32
	bytes  []byte
}

func (f field) float() float32 {
	return math.Float32frombits(f.fixed)
}

// walk calls fn for every field in b, skipping groups and fixed64 values.
func walk(b []byte, fn func(field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.Fixed32Type:
			f.fixed, n = protowire.ConsumeFixed32(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n >= 0 {
				b = b[n:]
				continue
			}
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func decodeVector(b []byte) (geom.Vector, error) {
	var v geom.Vector
	err := walk(b, func(f field) error {
		if f.typ != protowire.Fixed32Type {
			return nil
		}
		switch f.num {
		case vectorX:
			v.X = f.float()
		case vectorY:
			v.Y = f.float()
		}
		return nil
	})
	return v, err
}

func EncodeState(s pong.GameState) []byte {
	b := make([]byte, 0, 64)
	b = appendVector(b, statePlayer1, s.Player1.Pos)
	b = appendVector(b, statePlayer2, s.Player2.Pos)
	b = appendVector(b, stateBallPos, s.Ball.Pos)
	b = appendVector(b, stateBallVel, s.Ball.Vel)
	b = appendUint(b, stateScore1, uint64(s.Score.Player1))
	b = appendUint(b, stateScore2, uint64(s.Score.Player2))
	return b
}

func DecodeState(b []byte) (pong.GameState, error) {
	var s pong.GameState
	err := walk(b, func(f field) error {
		switch f.num {
		case statePlayer1, statePlayer2, stateBallPos, stateBallVel:
			if f.typ != protowire.BytesType {
				return fmt.Errorf("%w: field %d is not a vector", ErrMalformed, f.num)
			}
			v, err := decodeVector(f.bytes)
			if err != nil {
				return err
			}
			switch f.num {
			case statePlayer1:
				s.Player1.Pos = v
			case statePlayer2:
				s.Player2.Pos = v
			case stateBallPos:
				s.Ball.Pos = v
			case stateBallVel:
				s.Ball.Vel = v
			}
		case stateScore1:
			s.Score.Player1 = int(f.varint)
		case stateScore2:
			s.Score.Player2 = int(f.varint)
		}
		return nil
	})
	if err != nil {
		return pong.GameState{}, err
	}
	return s, nil
}
