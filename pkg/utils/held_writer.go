package utils

import (
	"bytes"
	"io"
	"sync"
)

// HeldWriter passes writes through to an underlying writer except while
// held, when it buffers them. A full-screen program holds the log writer so
// log lines do not tear its frame, then releases it on exit.
// Safe for concurrent use.
type HeldWriter struct {
	mu   sync.Mutex
	out  io.Writer
	held bool
	buf  bytes.Buffer
}

// NewHeldWriter returns a writer that passes through to out.
func NewHeldWriter(out io.Writer) *HeldWriter {
	return &HeldWriter{out: out}
}

func (h *HeldWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.held {
		return h.buf.Write(p)
	}
	return h.out.Write(p)
}

// Hold starts buffering writes.
func (h *HeldWriter) Hold() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held = true
}

// Release writes everything buffered since Hold and resumes passing writes
// through.
func (h *HeldWriter) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.held = false
	if h.buf.Len() == 0 {
		return nil
	}
	_, err := h.buf.WriteTo(h.out)
	return err
}
