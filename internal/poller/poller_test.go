package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNowSuccess(t *testing.T) {
	p := New(func(ctx context.Context) (time.Duration, error) {
		return 42 * time.Millisecond, nil
	}, time.Hour)

	sample := p.CheckNow(context.Background())

	assert.True(t, sample.OK)
	assert.Equal(t, int64(42), sample.LatencyMS)
	assert.False(t, sample.CheckedAt.IsZero())
	assert.Equal(t, sample, p.Last())
}

func TestCheckNowFailureDiscardsLatency(t *testing.T) {
	p := New(func(ctx context.Context) (time.Duration, error) {
		return 0, errors.New("gateway timeout")
	}, time.Hour)

	sample := p.CheckNow(context.Background())

	assert.False(t, sample.OK)
	assert.Zero(t, sample.LatencyMS)
	assert.False(t, sample.CheckedAt.IsZero())
}

func TestStartProbesOnInterval(t *testing.T) {
	var calls atomic.Int32
	p := New(func(ctx context.Context) (time.Duration, error) {
		calls.Add(1)
		return time.Millisecond, nil
	}, 10*time.Millisecond)

	p.Start()
	defer p.Stop()

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestStopCancelsSchedule(t *testing.T) {
	var calls atomic.Int32
	p := New(func(ctx context.Context) (time.Duration, error) {
		calls.Add(1)
		return time.Millisecond, nil
	}, 10*time.Millisecond)

	p.Start()
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	p.Stop()

	frozen := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, frozen, calls.Load())
}

func TestStopWithoutStart(t *testing.T) {
	p := New(nil, time.Hour)
	assert.NotPanics(t, p.Stop)
}

func TestManualAndTimerProduceSameTransition(t *testing.T) {
	var fail atomic.Bool
	p := New(func(ctx context.Context) (time.Duration, error) {
		if fail.Load() {
			return 0, errors.New("down")
		}
		return time.Millisecond, nil
	}, time.Hour)

	up := p.CheckNow(context.Background())
	assert.True(t, up.OK)

	fail.Store(true)
	down := p.CheckNow(context.Background())
	assert.False(t, down.OK)
	assert.Equal(t, down, p.Last())
}
