// Package bench records elapsed wall-clock durations for named code
// sections and renders them as raw listings, a sentinel-framed JSON
// payload, or a ranked bar chart.
package bench

import (
	"io"
	"os"
	"time"
	"unicode/utf8"

	"MicroBench/logutil"
)

const (
	// MaxEntries bounds how many measurements a session can hold.
	MaxEntries = 600
	// MaxLabelLen bounds the stored length of a label, in bytes.
	MaxLabelLen = 100
	// BarLength is the width of the bar rows in the ranked output.
	BarLength = 20
)

var epoch = time.Now()

// NowMicros returns a monotonic microsecond reading. Differences of two
// readings are immune to wall-clock adjustments.
func NowMicros() int64 {
	return time.Since(epoch).Microseconds()
}

// Entry is one recorded measurement.
type Entry struct {
	Label  string
	TimeUS int64
}

// Session is a bounded append-only store of timing entries plus a single
// outstanding start mark. Not safe for concurrent use; there is no
// nesting, a second Start discards the first mark.
type Session struct {
	entries [MaxEntries]Entry
	n       int
	totalUS int64
	startUS int64
	out     io.Writer
}

// NewSession returns an empty session writing reports to stdout.
func NewSession() *Session {
	return &Session{out: os.Stdout}
}

// SetOutput redirects report output, mainly for tests.
func (s *Session) SetOutput(w io.Writer) { s.out = w }

// Reset clears all entries, the running total and the pending start mark.
func (s *Session) Reset() {
	s.n = 0
	s.totalUS = 0
	s.startUS = 0
}

// Start marks the beginning of a timed region.
func (s *Session) Start() {
	s.startUS = NowMicros()
}

// Stop ends the current timed region and records it under label. Without
// a prior Start the stored duration is a bogus but valid signed value.
func (s *Session) Stop(label string) {
	s.Insert(label, NowMicros()-s.startUS)
}

// Insert appends one measurement. Past capacity the entry is dropped with
// a diagnostic and prior state is left intact; never fatal.
func (s *Session) Insert(label string, us int64) {
	if s.n >= MaxEntries {
		logutil.Errorf("exceeded maximum of %d benchmarked sections, dropping %q", MaxEntries, label)
		return
	}
	s.entries[s.n] = Entry{Label: truncateLabel(label), TimeUS: us}
	s.totalUS += us
	s.n++
}

// Len returns the number of stored entries.
func (s *Session) Len() int { return s.n }

// Total returns the running sum of recorded durations, in microseconds.
func (s *Session) Total() int64 { return s.totalUS }

// Entries returns the live window of stored entries, in storage order.
// PrintRanked reorders it in place.
func (s *Session) Entries() []Entry { return s.entries[:s.n] }

// truncateLabel cuts label at the rune boundary at or before MaxLabelLen
// bytes, so a stored label is always valid UTF-8 within the bound.
func truncateLabel(label string) string {
	if len(label) <= MaxLabelLen {
		return label
	}
	cut := MaxLabelLen
	for cut > 0 && !utf8.RuneStart(label[cut]) {
		cut--
	}
	return label[:cut]
}
