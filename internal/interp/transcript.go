package interp

import (
	"fmt"
	"strings"
	"sync"
)

// Transcript is an append-only text log. The supervisor keeps two: one for
// lifecycle/diagnostic lines ("post") and one for raw interpreter output plus
// dispatch echoes. Both are unbounded with no rotation.
//
// An optional sink receives every appended chunk in order, letting a host
// forward output elsewhere (an LSP log channel, a terminal).
type Transcript struct {
	mu   sync.Mutex
	buf  strings.Builder
	sink func(chunk string)
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// SetSink installs fn as the chunk receiver. fn is called synchronously from
// Append under the transcript lock; it must not call back into the transcript.
func (t *Transcript) SetSink(fn func(chunk string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = fn
}

// Append appends chunk exactly as given, in arrival order.
func (t *Transcript) Append(chunk string) {
	if chunk == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.WriteString(chunk)
	if t.sink != nil {
		t.sink(chunk)
	}
}

// Appendf appends a formatted line, adding the trailing newline.
func (t *Transcript) Appendf(format string, args ...any) {
	t.Append(fmt.Sprintf(format, args...) + "\n")
}

// String returns everything appended so far.
func (t *Transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}
