// Package sprite loads the player and enemy sprites asynchronously.
//
// Each sprite settles exactly once, into one of two observable states:
// ready (the loaded value is used) or fallback (the renderer draws a
// procedural placeholder for the rest of the session). A load that fails or
// does not finish before the deadline falls back; there are no retries.
package sprite

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Kind identifies a sprite slot.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the slot name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Source is what renderers depend on: whether a sprite can be drawn, or the
// procedural fallback must be used instead.
type Source interface {
	Ready(k Kind) bool
}

// Lookup is a Source that also hands out the loaded values.
type Lookup[T any] interface {
	Source
	Get(k Kind) (T, bool)
}

// Loader produces one sprite. It should honour ctx cancellation.
type Loader[T any] func(ctx context.Context) (T, error)

type status int

const (
	statusPending status = iota
	statusReady
	statusFallback
)

type entry[T any] struct {
	status status
	value  T
}

// Set holds the load state of a group of sprites.
// A nil *Set reports every sprite as not ready.
type Set[T any] struct {
	mu      sync.RWMutex
	entries map[Kind]*entry[T]
	logger  *log.Logger
	done    chan struct{}
}

// Load starts every loader in the background and returns immediately.
// With a positive timeout, sprites still pending at the deadline fall back.
func Load[T any](ctx context.Context, loaders map[Kind]Loader[T], timeout time.Duration, logger *log.Logger) *Set[T] {
	if logger == nil {
		logger = log.Default()
	}

	s := &Set[T]{
		entries: make(map[Kind]*entry[T], len(loaders)),
		logger:  logger,
		done:    make(chan struct{}),
	}
	for k := range loaders {
		s.entries[k] = &entry[T]{}
	}

	loadCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		loadCtx, cancel = context.WithTimeout(ctx, timeout)
	}

	var wg sync.WaitGroup
	for k, load := range loaders {
		wg.Add(1)
		go func(k Kind, load Loader[T]) {
			defer wg.Done()
			s.run(loadCtx, k, load)
		}(k, load)
	}

	go func() {
		wg.Wait()
		cancel()
		close(s.done)
	}()

	return s
}

// Static returns a Set whose sprites are already settled: every given value
// is ready, and the listed missing kinds are fallbacks.
func Static[T any](values map[Kind]T, missing ...Kind) *Set[T] {
	s := &Set[T]{
		entries: make(map[Kind]*entry[T], len(values)+len(missing)),
		logger:  log.Default(),
		done:    make(chan struct{}),
	}
	for k, v := range values {
		s.entries[k] = &entry[T]{status: statusReady, value: v}
	}
	for _, k := range missing {
		s.entries[k] = &entry[T]{status: statusFallback}
	}
	close(s.done)
	return s
}

func (s *Set[T]) run(ctx context.Context, k Kind, load Loader[T]) {
	type result struct {
		value T
		err   error
	}

	ch := make(chan result, 1)
	go func() {
		v, err := load(ctx)
		ch <- result{value: v, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			s.fallback(k, r.err)
			return
		}
		s.settle(k, r.value)
	case <-ctx.Done():
		s.fallback(k, fmt.Errorf("sprite: %s: %w", k, ctx.Err()))
	}
}

func (s *Set[T]) settle(k Kind, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[k]
	if e.status != statusPending {
		return
	}
	e.status = statusReady
	e.value = v
	s.logger.Debug("sprite loaded", "sprite", k)
}

func (s *Set[T]) fallback(k Kind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[k]
	if e.status != statusPending {
		return
	}
	e.status = statusFallback
	s.logger.Warn("sprite unavailable, using fallback", "sprite", k, "error", err)
}

// Ready reports whether sprite k loaded successfully.
func (s *Set[T]) Ready(k Kind) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[k]
	return ok && e.status == statusReady
}

// Settled reports whether sprite k has reached its final state.
func (s *Set[T]) Settled(k Kind) bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[k]
	return !ok || e.status != statusPending
}

// Get returns the loaded value for k, if ready.
func (s *Set[T]) Get(k Kind) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[k]
	if !ok || e.status != statusReady {
		return zero, false
	}
	return e.value, true
}

// Done is closed once every sprite has settled.
func (s *Set[T]) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until every sprite has settled or ctx ends.
func (s *Set[T]) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
