// Package lifecycle feeds storage change events into aretw0/lifecycle.
//
// The TUI reads external changes through a lifecycle.Source rather than
// the raw watch channel, so the forwarding goroutine is supervised like
// any other lifecycle task.
package lifecycle

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/flexnote/pkg/core"
)

// ErrAlreadyStarted is returned by a second call to Start.
var ErrAlreadyStarted = errors.New("source already started")

// StoreSource relays core.Events from a Watchable storage. core.Event has a
// String method, which is all lifecycle.Event asks for.
type StoreSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	keys   map[string]bool

	once sync.Once
}

// SourceOption configures a StoreSource.
type SourceOption func(*StoreSource)

// WithKeys restricts the source to events on the given keys.
func WithKeys(keys ...string) SourceOption {
	return func(s *StoreSource) {
		if s.keys == nil {
			s.keys = make(map[string]bool, len(keys))
		}
		for _, k := range keys {
			s.keys[k] = true
		}
	}
}

// NewSource wraps the channel returned by core.Watchable.Watch.
func NewSource(events <-chan core.Event, opts ...SourceOption) *StoreSource {
	s := &StoreSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events implements lifecycle.Source.
func (s *StoreSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start implements lifecycle.Source. Events is closed once ctx ends or the
// watch channel closes.
func (s *StoreSource) Start(ctx context.Context) error {
	first := false
	s.once.Do(func() { first = true })
	if !first {
		return ErrAlreadyStarted
	}

	lifecycle.Go(ctx, s.relay)
	return nil
}

func (s *StoreSource) relay(ctx context.Context) error {
	defer close(s.out)
	for {
		var (
			e  core.Event
			ok bool
		)
		select {
		case <-ctx.Done():
			return nil
		case e, ok = <-s.events:
			if !ok {
				return nil
			}
		}
		if s.keys != nil && !s.keys[e.Key] {
			continue
		}
		select {
		case s.out <- e:
		case <-ctx.Done():
			return nil
		}
	}
}

var _ lifecycle.Source = (*StoreSource)(nil)
