// Package replay records the inputs of a game and plays them back. Since a
// game is fully determined by its seed and its per-frame inputs and deltas,
// a recording reproduces the whole session.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomz197/skyraid/internal/sim"
)

// Version is the recording format version written by Encode.
const Version = 1

// ErrUnsupportedVersion is returned by Decode for recordings written in an
// unknown format version.
var ErrUnsupportedVersion = errors.New("unsupported recording version")

// Frame is one recorded simulation step.
type Frame struct {
	DT    time.Duration
	Input sim.Input
	Field sim.Field // Non-zero when the field was reoriented before this step
}

// Recording is a complete session: everything needed to rebuild it.
type Recording struct {
	Session string
	Seed    uint64
	Field   sim.Field
	Frames  []Frame

	pendingField sim.Field
}

// New creates an empty recording for a game created with the given seed
// and field.
func New(session string, seed uint64, field sim.Field) *Recording {
	return &Recording{
		Session: session,
		Seed:    seed,
		Field:   field,
	}
}

// Record appends one step.
func (r *Recording) Record(dt time.Duration, in sim.Input) {
	r.Frames = append(r.Frames, Frame{DT: dt, Input: in, Field: r.pendingField})
	r.pendingField = sim.Field{}
}

// Reorient notes a field change applied before the next recorded step.
func (r *Recording) Reorient(field sim.Field) {
	r.pendingField = field
}

// Input bits of the packed frame format.
const (
	keyUp uint8 = 1 << iota
	keyDown
	keyLeft
	keyRight
	keyFire
	keyPointer
	keyRestart
)

type wireRecording struct {
	Version int         `msgpack:"v"`
	Session string      `msgpack:"session"`
	Seed    uint64      `msgpack:"seed"`
	Width   float64     `msgpack:"w"`
	Height  float64     `msgpack:"h"`
	Frames  []wireFrame `msgpack:"frames"`
}

type wireFrame struct {
	_msgpack struct{} `msgpack:",as_array"`

	DT     int64 // Nanoseconds
	Keys   uint8
	PX, PY float64
	Width  float64
	Height float64
}

func packFrame(f Frame) wireFrame {
	in := f.Input
	var keys uint8
	for _, k := range []struct {
		set bool
		bit uint8
	}{
		{in.MoveUp, keyUp},
		{in.MoveDown, keyDown},
		{in.MoveLeft, keyLeft},
		{in.MoveRight, keyRight},
		{in.Fire, keyFire},
		{in.PointerActive, keyPointer},
		{in.RestartRequested, keyRestart},
	} {
		if k.set {
			keys |= k.bit
		}
	}
	return wireFrame{
		DT:     int64(f.DT),
		Keys:   keys,
		PX:     in.PointerX,
		PY:     in.PointerY,
		Width:  f.Field.Width,
		Height: f.Field.Height,
	}
}

func unpackFrame(w wireFrame) Frame {
	return Frame{
		DT: time.Duration(w.DT),
		Input: sim.Input{
			MoveUp:           w.Keys&keyUp != 0,
			MoveDown:         w.Keys&keyDown != 0,
			MoveLeft:         w.Keys&keyLeft != 0,
			MoveRight:        w.Keys&keyRight != 0,
			Fire:             w.Keys&keyFire != 0,
			PointerActive:    w.Keys&keyPointer != 0,
			PointerX:         w.PX,
			PointerY:         w.PY,
			RestartRequested: w.Keys&keyRestart != 0,
		},
		Field: sim.Field{Width: w.Width, Height: w.Height},
	}
}

// Encode writes the recording to w in msgpack format.
func (r *Recording) Encode(w io.Writer) error {
	wire := wireRecording{
		Version: Version,
		Session: r.Session,
		Seed:    r.Seed,
		Width:   r.Field.Width,
		Height:  r.Field.Height,
		Frames:  make([]wireFrame, len(r.Frames)),
	}
	for i, f := range r.Frames {
		wire.Frames[i] = packFrame(f)
	}
	if err := msgpack.NewEncoder(w).Encode(&wire); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return nil
}

// Decode reads a recording written by Encode.
func Decode(rd io.Reader) (*Recording, error) {
	var wire wireRecording
	if err := msgpack.NewDecoder(rd).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	if wire.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, wire.Version)
	}
	if wire.Width <= 0 || wire.Height <= 0 {
		return nil, fmt.Errorf("decode recording: invalid field %vx%v", wire.Width, wire.Height)
	}

	r := &Recording{
		Session: wire.Session,
		Seed:    wire.Seed,
		Field:   sim.Field{Width: wire.Width, Height: wire.Height},
		Frames:  make([]Frame, len(wire.Frames)),
	}
	for i, f := range wire.Frames {
		r.Frames[i] = unpackFrame(f)
	}
	return r, nil
}

// Save writes the recording to a file.
func (r *Recording) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create recording: %w", err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from a file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
