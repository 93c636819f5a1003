package wire

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"termpong/internal/pong"
)

// A replay is a stream of varint length prefixed records: one Header
// followed by one Frame per simulation step.
//
//	message Header {
//	  uint64 version = 1; string session_id = 2; uint64 seed = 3;
//	  uint64 walls = 4; uint64 reset = 5; uint64 motion = 6; Vector serve = 7;
//	  fixed32 width = 8; fixed32 height = 9;
//	}
//	message Frame { uint64 buttons = 1; fixed32 elapsed = 2; fixed32 width = 3; fixed32 height = 4; }
const ReplayVersion = 1

// Records larger than this are rejected instead of allocated.
const maxRecordSize = 1 << 16

const (
	headerVersion protowire.Number = iota + 1
	headerSessionID
	headerSeed
	headerWalls
	headerReset
	headerMotion
	headerServe
	headerWidth
	headerHeight
)

const (
	frameButtons protowire.Number = iota + 1
	frameElapsed
	frameWidth
	frameHeight
)

const (
	buttonP1Up uint64 = 1 << iota
	buttonP1Down
	buttonP2Up
	buttonP2Down
)

// Header carries everything needed to rebuild the Engine a replay was recorded with.
type Header struct {
	SessionID string
	Seed      uint64
	Rules     pong.Rules
	// Field the initial state was laid out on.
	Field     pong.Size
}

func encodeHeader(h Header) []byte {
	var b []byte
	b = appendUint(b, headerVersion, ReplayVersion)
	b = protowire.AppendTag(b, headerSessionID, protowire.BytesType)
	b = protowire.AppendString(b, h.SessionID)
	b = appendUint(b, headerSeed, h.Seed)
	b = appendUint(b, headerWalls, uint64(h.Rules.Walls))
	b = appendUint(b, headerReset, uint64(h.Rules.Reset))
	b = appendUint(b, headerMotion, uint64(h.Rules.Motion))
	if h.Rules.Serve != nil {
		b = appendVector(b, headerServe, *h.Rules.Serve)
	}
	b = appendFloat(b, headerWidth, h.Field.Width)
	b = appendFloat(b, headerHeight, h.Field.Height)
	return b
}

func decodeHeader(b []byte) (Header, error) {
	var h Header
	var version uint64
	err := walk(b, func(f field) error {
		switch f.num {
		case headerVersion:
			version = f.varint
		case headerSessionID:
			h.SessionID = string(f.bytes)
		case headerSeed:
			h.Seed = f.varint
		case headerWalls:
			h.Rules.Walls = pong.WallMode(f.varint)
		case headerReset:
			h.Rules.Reset = pong.ResetPolicy(f.varint)
		case headerMotion:
			h.Rules.Motion = pong.Motion(f.varint)
		case headerServe:
			v, err := decodeVector(f.bytes)
			if err != nil {
				return err
			}
			h.Rules.Serve = &v
		case headerWidth:
			h.Field.Width = f.float()
		case headerHeight:
			h.Field.Height = f.float()
		}
		return nil
	})
	if err != nil {
		return Header{}, err
	}
	if version != ReplayVersion {
		return Header{}, fmt.Errorf("unsupported replay version %d", version)
	}
	return h, nil
}

func encodeFrame(b []byte, in pong.FrameInput) []byte {
	var buttons uint64
	if in.P1Up {
		buttons |= buttonP1Up
	}
	if in.P1Down {
		buttons |= buttonP1Down
	}
	if in.P2Up {
		buttons |= buttonP2Up
	}
	if in.P2Down {
		buttons |= buttonP2Down
	}

	b = appendUint(b, frameButtons, buttons)
	b = appendFloat(b, frameElapsed, in.Elapsed)
	b = appendFloat(b, frameWidth, in.Field.Width)
	b = appendFloat(b, frameHeight, in.Field.Height)
	return b
}

func decodeFrame(b []byte) (pong.FrameInput, error) {
	var in pong.FrameInput
	err := walk(b, func(f field) error {
		switch f.num {
		case frameButtons:
			in.P1Up = f.varint&buttonP1Up != 0
			in.P1Down = f.varint&buttonP1Down != 0
			in.P2Up = f.varint&buttonP2Up != 0
			in.P2Down = f.varint&buttonP2Down != 0
		case frameElapsed:
			in.Elapsed = f.float()
		case frameWidth:
			in.Field.Width = f.float()
		case frameHeight:
			in.Field.Height = f.float()
		}
		return nil
	})
	return in, err
}

type ReplayWriter struct {
	w   *bufio.Writer
	buf []byte
}

// NewReplayWriter writes the header immediately. Call Flush when done.
func NewReplayWriter(w io.Writer, h Header) (*ReplayWriter, error) {
	rw := &ReplayWriter{w: bufio.NewWriter(w)}
	if err := rw.writeRecord(encodeHeader(h)); err != nil {
		return nil, fmt.Errorf("writing replay header: %w", err)
	}
	return rw, nil
}

func (rw *ReplayWriter) WriteFrame(in pong.FrameInput) error {
	rw.buf = encodeFrame(rw.buf[:0], in)
	return rw.writeRecord(rw.buf)
}

func (rw *ReplayWriter) writeRecord(rec []byte) error {
	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], uint64(len(rec)))
	if _, err := rw.w.Write(prefix[:n]); err != nil {
		return err
	}
	_, err := rw.w.Write(rec)
	return err
}

func (rw *ReplayWriter) Flush() error {
	return rw.w.Flush()
}

type ReplayReader struct {
	r      *bufio.Reader
	buf    []byte
	Header Header
}

func NewReplayReader(r io.Reader) (*ReplayReader, error) {
	rr := &ReplayReader{r: bufio.NewReader(r)}
	rec, err := rr.readRecord()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("reading replay header: %w", err)
	}
	rr.Header, err = decodeHeader(rec)
	if err != nil {
		return nil, err
	}
	return rr, nil
}

// Next returns the next recorded frame, or io.EOF after the last one.
func (rr *ReplayReader) Next() (pong.FrameInput, error) {
	rec, err := rr.readRecord()
	if err != nil {
		return pong.FrameInput{}, err
	}
	return decodeFrame(rec)
}

func (rr *ReplayReader) readRecord() ([]byte, error) {
	size, err := binary.ReadUvarint(rr.r)
	if err != nil {
		return nil, err
	}
	if size > maxRecordSize {
		return nil, fmt.Errorf("%w: record of %d bytes", ErrMalformed, size)
	}
	if cap(rr.buf) < int(size) {
		rr.buf = make([]byte, size)
	}
	rr.buf = rr.buf[:size]
	if _, err := io.ReadFull(rr.r, rr.buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return rr.buf, nil
}
