package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/tunnelman/core"
)

// FormatVersion is bumped whenever the journal layout changes
const FormatVersion = 1

var ErrCorrupt = errors.New("replay: corrupt journal")

// Record kinds, one JSON object per line
const (
	kindHeader = "header"
	kindInput  = "input"
	kindEnd    = "end"
)

// Header pins everything a deterministic rerun needs besides the inputs
type Header struct {
	Version    int   `json:"version"`
	Seed       int64 `json:"seed"`
	StartLevel int   `json:"start_level"`
	Lives      int   `json:"lives"`
}

// Input is one consumed action, Poll counts every input poll since the session started
type Input struct {
	Poll   int         `json:"poll"`
	Action core.Action `json:"-"`
}

type line struct {
	Type string `json:"type"`

	*Header

	Poll   int    `json:"poll,omitempty"`
	Action string `json:"action,omitempty"`
	Polls  int    `json:"polls,omitempty"`
}

// Writer encodes a journal as zstd-compressed JSON lines
type Writer struct {
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewWriter wraps dst, Close flushes the compressor but leaves dst open
func NewWriter(dst io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Writer{enc: enc, w: bufio.NewWriterSize(enc, 32*1024)}, nil
}

func (w *Writer) write(l line) error {
	b, err := json.Marshal(l)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteHeader must be the first record
func (w *Writer) WriteHeader(h Header) error {
	h.Version = FormatVersion
	return w.write(line{Type: kindHeader, Header: &h})
}

// WriteInput records an action consumed on the given poll
func (w *Writer) WriteInput(in Input) error {
	return w.write(line{Type: kindInput, Poll: in.Poll, Action: in.Action.String()})
}

// WriteEnd records the total number of polls, marking the journal complete
func (w *Writer) WriteEnd(polls int) error {
	return w.write(line{Type: kindEnd, Polls: polls})
}

// Close flushes buffered lines and finishes the zstd frame
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		_ = w.enc.Close()
		return err
	}
	return w.enc.Close()
}

// Journal is a fully decoded recording
type Journal struct {
	Header Header
	Inputs []Input
	// Polls is the poll count at the end marker, -1 if the recording was cut short
	Polls int
}

// Read decodes a journal, inputs must be in strictly increasing poll order
func Read(src io.Reader) (*Journal, error) {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	j := &Journal{Polls: -1}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for sc.Scan() {
		n++
		var l line
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupt, n, err)
		}
		if n == 1 {
			if l.Type != kindHeader || l.Header == nil {
				return nil, fmt.Errorf("%w: missing header", ErrCorrupt)
			}
			if l.Header.Version != FormatVersion {
				return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, l.Header.Version)
			}
			j.Header = *l.Header
			continue
		}
		if j.Polls >= 0 {
			return nil, fmt.Errorf("%w: line %d after end marker", ErrCorrupt, n)
		}

		switch l.Type {
		case kindInput:
			a, ok := core.ParseAction(l.Action)
			if !ok || a == core.ActionNone {
				return nil, fmt.Errorf("%w: line %d: bad action %q", ErrCorrupt, n, l.Action)
			}
			if k := len(j.Inputs); k > 0 && l.Poll <= j.Inputs[k-1].Poll {
				return nil, fmt.Errorf("%w: line %d: poll %d out of order", ErrCorrupt, n, l.Poll)
			}
			j.Inputs = append(j.Inputs, Input{Poll: l.Poll, Action: a})
		case kindEnd:
			j.Polls = l.Polls
		default:
			return nil, fmt.Errorf("%w: line %d: unknown record %q", ErrCorrupt, n, l.Type)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty", ErrCorrupt)
	}
	return j, nil
}

// ReadFile opens and decodes a journal file
func ReadFile(path string) (*Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
