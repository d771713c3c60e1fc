// Package input turns the raw terminal byte stream into per-frame input
// snapshots: held keys, edge-triggered presses and SGR mouse state.
package input

import (
	"bufio"
	"bytes"
	"strconv"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 30 * time.Millisecond

// maxPending bounds how many bytes of an unfinished escape sequence are kept
// for the next frame.
const maxPending = 32

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool

	// Restart is set only on the frame the restart key or a click arrived.
	Restart bool

	// Mouse state. Col and Row are 1-based terminal cells.
	MouseHeld bool
	MouseCol  int
	MouseRow  int
	MouseSeen bool // A mouse position has been reported at least once

	// Active is set when any byte arrived this frame.
	Active bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time
}

// mouseState is level-triggered: the button stays held until a release
// report arrives.
type mouseState struct {
	held bool
	seen bool
	col  int
	row  int
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	keys    keyState
	mouse   mouseState
	pending []byte
	closed  bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 256)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed returns true once the underlying reader has failed or hit EOF and
// all buffered bytes have been consumed.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the snapshot for this frame.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.feed(buf, time.Now())
}

// feed parses buf as arriving at now and returns the resulting snapshot.
func (s *Stream) feed(buf []byte, now time.Time) Input {
	in := Input{Active: len(buf) > 0}

	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			s.applyByte(&in, b, now)
			continue
		}

		n, complete := s.applyEscape(&in, buf[i:], now)
		if !complete {
			if len(buf)-i <= maxPending {
				s.pending = append([]byte(nil), buf[i:]...)
			}
			break
		}
		i += n - 1
	}

	in.Quit = in.Quit || now.Sub(s.keys.quit) < keyHoldDuration
	in.Up = now.Sub(s.keys.up) < keyHoldDuration
	in.Down = now.Sub(s.keys.down) < keyHoldDuration
	in.Left = now.Sub(s.keys.left) < keyHoldDuration
	in.Right = now.Sub(s.keys.right) < keyHoldDuration
	in.Fire = now.Sub(s.keys.fire) < keyHoldDuration

	in.MouseHeld = s.mouse.held
	in.MouseSeen = s.mouse.seen
	in.MouseCol = s.mouse.col
	in.MouseRow = s.mouse.row

	return in
}

// applyByte updates the key state based on a single pressed byte.
func (s *Stream) applyByte(in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl+C
		s.keys.quit = now
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		s.keys.left = now
	case 'd', 'D', 'l', 'L':
		s.keys.right = now
	case 'w', 'W', 'k', 'K':
		s.keys.up = now
	case 's', 'S', 'j', 'J':
		s.keys.down = now
	case ' ', 'f', 'F':
		s.keys.fire = now
	case 'r', 'R', '\n', '\r':
		in.Restart = true
	}
}

// applyEscape handles an escape sequence at the start of seq. Returns the
// number of bytes consumed, or complete=false if the sequence is cut off.
func (s *Stream) applyEscape(in *Input, seq []byte, now time.Time) (n int, complete bool) {
	if len(seq) < 2 {
		return 0, false
	}
	if seq[1] != '[' {
		return 1, true // Lone escape
	}
	if len(seq) < 3 {
		return 0, false
	}

	if seq[2] == '<' {
		return s.applyMouse(in, seq)
	}

	// CSI parameters run up to a final byte in 0x40-0x7E. Modified arrows
	// (e.g. Shift+Up, ESC [1;2A) move like plain ones; other sequences are
	// dropped whole so their bytes are not read as keys.
	for j := 2; j < len(seq); j++ {
		b := seq[j]
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case 'A': // Up arrow
			s.keys.up = now
		case 'B': // Down arrow
			s.keys.down = now
		case 'C': // Right arrow
			s.keys.right = now
		case 'D': // Left arrow
			s.keys.left = now
		}
		return j + 1, true
	}
	return 0, false
}

// applyMouse parses an SGR mouse report: ESC [ < button ; col ; row (M|m).
func (s *Stream) applyMouse(in *Input, seq []byte) (n int, complete bool) {
	end := bytes.IndexAny(seq, "Mm")
	if end < 0 {
		return 0, false
	}

	fields := bytes.Split(seq[3:end], []byte{';'})
	if len(fields) != 3 {
		return end + 1, true
	}
	button, err1 := strconv.Atoi(string(fields[0]))
	col, err2 := strconv.Atoi(string(fields[1]))
	row, err3 := strconv.Atoi(string(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return end + 1, true
	}

	release := seq[end] == 'm'
	motion := button&32 != 0
	wheel := button&64 != 0
	left := button&3 == 0

	s.mouse.seen = true
	s.mouse.col = col
	s.mouse.row = row

	switch {
	case wheel:
	case release:
		if left {
			s.mouse.held = false
		}
	case left && !motion:
		s.mouse.held = true
		in.Restart = true
	}
	return end + 1, true
}
