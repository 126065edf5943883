package replay

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/engine"
)

// Recorder passes input through from a live source and journals every consumed action
// It is also the "replay" service: Start creates the journal file, Stop seals it
type Recorder struct {
	src    engine.InputSource
	dir    string
	header Header
	logger *log.Logger

	mu     sync.Mutex
	f      *os.File
	w      *Writer
	path   string
	polls  int
	failed bool
}

// NewRecorder journals src into a new file under dir, logger may be nil
func NewRecorder(src engine.InputSource, dir string, h Header, logger *log.Logger) *Recorder {
	return &Recorder{src: src, dir: dir, header: h, logger: logger}
}

// Name implements service.Service
func (r *Recorder) Name() string {
	return "replay"
}

// Dependencies implements service.Service
func (r *Recorder) Dependencies() []string {
	return nil
}

// Start implements service.Service
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	name := fmt.Sprintf("tunnelman-%s-%d.jsonl.zst", time.Now().UTC().Format("20060102-150405"), r.header.Seed)
	path := filepath.Join(r.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("replay: %w", err)
	}
	if err := w.WriteHeader(r.header); err != nil {
		_ = w.Close()
		_ = f.Close()
		return fmt.Errorf("replay: %w", err)
	}
	r.f, r.w, r.path = f, w, path
	return nil
}

// Stop implements service.Service, safe to call twice
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return nil
	}
	var err error
	if !r.failed {
		err = r.w.WriteEnd(r.polls)
	}
	if cerr := r.w.Close(); err == nil {
		err = cerr
	}
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	r.w, r.f = nil, nil
	return err
}

// Path is the journal file, empty before Start
func (r *Recorder) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// PollInput implements engine.InputSource
// A write failure stops journaling but never interrupts play
func (r *Recorder) PollInput() (core.Action, bool) {
	a, ok := r.src.PollInput()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls++
	if !ok || r.w == nil || r.failed {
		return a, ok
	}
	if err := r.w.WriteInput(Input{Poll: r.polls, Action: a}); err != nil {
		r.failed = true
		if r.logger != nil {
			r.logger.Printf("replay: journaling stopped: %v", err)
		}
	}
	return a, ok
}
