package speech

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettlerResolveOnce(t *testing.T) {
	s := NewSettler()

	assert.True(t, s.Resolve("first"))
	assert.False(t, s.Resolve("second"))
	assert.False(t, s.Reject(errors.New("late error")))

	value, err := s.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "first", value)
}

func TestSettlerRejectOnce(t *testing.T) {
	s := NewSettler()
	cause := errors.New("recognition failed")

	assert.True(t, s.Reject(cause))
	assert.False(t, s.Resolve("too late"))

	value, err := s.Wait(context.Background())
	assert.Equal(t, cause, err)
	assert.Empty(t, value)
}

func TestSettlerDoubleSettlementIsNoOp(t *testing.T) {
	s := NewSettler()

	// End event and fallback timer racing: both settle, only the first
	// outcome survives.
	assert.True(t, s.Resolve("end event"))
	assert.False(t, s.Resolve(""))

	value, err := s.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "end event", value)
	assert.True(t, s.Settled())
}

func TestSettlerWaitHonorsContext(t *testing.T) {
	s := NewSettler()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSettlerWaitReturnsConcurrentSettlement(t *testing.T) {
	s := NewSettler()

	go func() {
		time.Sleep(10 * time.Millisecond)
		s.Resolve("transcript")
	}()

	value, err := s.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "transcript", value)
}
