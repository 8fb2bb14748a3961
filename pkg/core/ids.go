package core

import (
	"strconv"
	"strings"
	"time"
)

// Clock abstracts time retrieval so id generation is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDSource hands out wall-clock millisecond ids that strictly increase,
// even when the clock stalls or steps backwards.
type IDSource struct {
	clock Clock
	last  int64
}

// NewIDSource creates an IDSource. A nil clock means RealClock.
func NewIDSource(clock Clock) *IDSource {
	if clock == nil {
		clock = RealClock{}
	}
	return &IDSource{clock: clock}
}

// Next returns the next id as a number.
func (s *IDSource) Next() int64 {
	ms := s.clock.Now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return ms
}

// NextString returns prefix followed by the next id.
func (s *IDSource) NextString(prefix string) string {
	return prefix + strconv.FormatInt(s.Next(), 10)
}

// Observe raises the floor so that ids already in use (with the given
// prefix stripped) are never handed out again. Non-numeric ids are ignored.
func (s *IDSource) Observe(prefix, id string) {
	n, err := strconv.ParseInt(strings.TrimPrefix(id, prefix), 10, 64)
	if err != nil {
		return
	}
	if n > s.last {
		s.last = n
	}
}
