package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type duePublisherFunc func(ctx context.Context, now time.Time) (int, error)

func (f duePublisherFunc) PublishDue(ctx context.Context, now time.Time) (int, error) {
	return f(ctx, now)
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New("every minute", nil)
	require.Error(t, err)
}

func TestScheduler_Tick(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var calls int32
	s, err := New("* * * * *", duePublisherFunc(func(_ context.Context, at time.Time) (int, error) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, now, at)

		if atomic.LoadInt32(&calls) > 1 {
			return 0, errors.New("db is down")
		}

		return 2, nil
	}))
	require.NoError(t, err)

	sc := s.(*scheduler)
	sc.now = func() time.Time { return now }

	sc.tick(context.Background())

	meta, err := s.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Schedule: "* * * * *", LastRunAt: now, LastPublished: 2}, meta)

	sc.tick(context.Background())

	meta, err = s.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, "db is down", meta.(Stats).LastError)
	assert.Equal(t, "scheduler", s.Name())
}

func TestScheduler_Run(t *testing.T) {
	s, err := New("@every 1s", duePublisherFunc(func(context.Context, time.Time) (int, error) {
		return 0, nil
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	require.NoError(t, s.Run(ctx))

	meta, err := s.Ping(context.Background())
	require.NoError(t, err)
	assert.False(t, meta.(Stats).LastRunAt.IsZero())
}
