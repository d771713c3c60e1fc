package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFeed_KeysHeldWithinWindow(t *testing.T) {
	s := newStream()

	in := s.feed([]byte("a w"), t0)
	if !in.Left || !in.Up || !in.Fire {
		t.Fatalf("keys not held: %+v", in)
	}
	if !in.Active {
		t.Errorf("Active = false with bytes received")
	}

	in = s.feed(nil, t0.Add(20*time.Millisecond))
	if !in.Left || !in.Up || !in.Fire {
		t.Errorf("keys released inside the hold window: %+v", in)
	}
	if in.Active {
		t.Errorf("Active = true with no bytes received")
	}

	in = s.feed(nil, t0.Add(keyHoldDuration))
	if in.Left || in.Up || in.Fire {
		t.Errorf("keys still held after the hold window: %+v", in)
	}
}

func TestFeed_ArrowKeys(t *testing.T) {
	s := newStream()
	in := s.feed([]byte("\x1b[A\x1b[D"), t0)
	if !in.Up || !in.Left || in.Down || in.Right {
		t.Errorf("arrows parsed as %+v, want up+left", in)
	}
}

func TestFeed_ModifiedArrowKeys(t *testing.T) {
	s := newStream()
	in := s.feed([]byte("\x1b[1;2A"), t0)
	if !in.Up || in.Left {
		t.Errorf("Shift+Up parsed as %+v, want up only", in)
	}
}

func TestFeed_UnknownCSIConsumedWhole(t *testing.T) {
	tests := []struct {
		name string
		seq  string
	}{
		{"F5", "\x1b[15~"},
		{"Shift+Tab", "\x1b[Z"},
		{"focus in", "\x1b[I"},
		{"Ctrl+F1 with letters after", "\x1b[1;5P"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			in := s.feed([]byte(tt.seq+"d"), t0)
			if !in.Right || in.Left || in.Up || in.Down || in.Fire || in.Quit || in.Restart {
				t.Errorf("feed(%q) = %+v, want only the trailing d", tt.seq, in)
			}
		})
	}
}

func TestFeed_SplitCSISequence(t *testing.T) {
	s := newStream()
	in := s.feed([]byte("\x1b[1;2"), t0)
	if in.Up || in.Left || in.Down || in.Right {
		t.Fatalf("partial sequence produced keys: %+v", in)
	}
	in = s.feed([]byte("A"), t0)
	if !in.Up || in.Left {
		t.Errorf("completed Shift+Up parsed as %+v, want up only", in)
	}
}

func TestFeed_RestartIsEdgeTriggered(t *testing.T) {
	s := newStream()
	if in := s.feed([]byte("r"), t0); !in.Restart {
		t.Errorf("Restart = false on the frame r arrived")
	}
	if in := s.feed(nil, t0.Add(time.Millisecond)); in.Restart {
		t.Errorf("Restart = true on a later frame")
	}
	if in := s.feed([]byte("\r"), t0); !in.Restart {
		t.Errorf("Restart = false for Enter")
	}
}

func TestFeed_Quit(t *testing.T) {
	s := newStream()
	if in := s.feed([]byte{0x03}, t0); !in.Quit {
		t.Errorf("Quit = false for Ctrl+C")
	}
}

func TestFeed_MousePressDragRelease(t *testing.T) {
	s := newStream()

	in := s.feed([]byte("\x1b[<0;10;5M"), t0)
	if !in.MouseHeld || !in.Restart || !in.MouseSeen {
		t.Fatalf("press: %+v", in)
	}
	if in.MouseCol != 10 || in.MouseRow != 5 {
		t.Errorf("press at (%d, %d), want (10, 5)", in.MouseCol, in.MouseRow)
	}

	in = s.feed([]byte("\x1b[<32;20;8M"), t0.Add(time.Second))
	if !in.MouseHeld || in.Restart {
		t.Errorf("drag: %+v", in)
	}
	if in.MouseCol != 20 || in.MouseRow != 8 {
		t.Errorf("drag at (%d, %d), want (20, 8)", in.MouseCol, in.MouseRow)
	}

	in = s.feed([]byte("\x1b[<0;20;8m"), t0.Add(2*time.Second))
	if in.MouseHeld {
		t.Errorf("button still held after release")
	}
}

func TestFeed_MouseWheelIgnored(t *testing.T) {
	s := newStream()
	in := s.feed([]byte("\x1b[<64;3;3M"), t0)
	if in.MouseHeld || in.Restart {
		t.Errorf("wheel changed button state: %+v", in)
	}
}

func TestFeed_SplitEscapeSequence(t *testing.T) {
	s := newStream()

	in := s.feed([]byte("\x1b[<0;1"), t0)
	if in.MouseHeld {
		t.Fatalf("incomplete report applied")
	}
	in = s.feed([]byte("2;4M"), t0)
	if !in.MouseHeld || in.MouseCol != 12 || in.MouseRow != 4 {
		t.Errorf("joined report parsed as %+v", in)
	}
}

func TestFeed_MalformedMouseReportSkipped(t *testing.T) {
	s := newStream()
	in := s.feed([]byte("\x1b[<x;1;1Ma"), t0)
	if in.MouseHeld {
		t.Errorf("malformed report applied")
	}
	if !in.Left {
		t.Errorf("bytes after a malformed report were dropped")
	}
}

func TestReadInput_StreamCloses(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	var in Input
	deadline := time.Now().Add(time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		if got := ReadInput(s); got.Right {
			in = got
		}
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatalf("stream did not close after EOF")
	}
	if !in.Right {
		t.Errorf("byte read before EOF was lost")
	}
}
