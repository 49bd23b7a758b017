package speech

import (
	"context"
	"sync"
)

// Settler is a single-settlement result: the speech engines report
// completion through events that can fire more than once (an end event
// racing a fallback timer, an error arriving after completion), and only
// the first settlement may take effect. Resolve and Reject report whether
// this call won; losing calls are no-ops.
type Settler struct {
	mu      sync.Mutex
	settled bool
	done    chan struct{}
	value   string
	err     error
}

func NewSettler() *Settler {
	return &Settler{
		done: make(chan struct{}),
	}
}

func (s *Settler) Resolve(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settled {
		return false
	}
	s.settled = true
	s.value = value
	close(s.done)
	return true
}

func (s *Settler) Reject(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settled {
		return false
	}
	s.settled = true
	s.err = err
	close(s.done)
	return true
}

func (s *Settler) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// Wait blocks until the first settlement or context cancellation.
func (s *Settler) Wait(ctx context.Context) (string, error) {
	select {
	case <-s.done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.value, s.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Done exposes the settlement signal for select loops.
func (s *Settler) Done() <-chan struct{} {
	return s.done
}
