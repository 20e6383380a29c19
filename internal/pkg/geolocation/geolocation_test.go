package geolocation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcquirer struct {
	calls     []Options
	responses []attemptResult
	block     bool
}

func (f *fakeAcquirer) CurrentPosition(ctx context.Context, opts Options) (Position, error) {
	f.calls = append(f.calls, opts)
	if f.block {
		<-ctx.Done()
		return Position{}, ctx.Err()
	}
	r := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return r.pos, r.err
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.FirstAttempt.Timeout = 50 * time.Millisecond
	cfg.SecondAttempt.Timeout = 50 * time.Millisecond
	cfg.HardTimeout = 200 * time.Millisecond
	return cfg
}

func TestAcquire_FirstAttemptWins(t *testing.T) {
	want := Position{Latitude: 52.52, Longitude: 13.405, Accuracy: 8}
	fake := &fakeAcquirer{responses: []attemptResult{{pos: want}}}

	got, err := Acquire(context.Background(), fake, testConfig())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.Len(t, fake.calls, 1)
	assert.True(t, fake.calls[0].HighAccuracy)
}

func TestAcquire_RetriesAtLowAccuracy(t *testing.T) {
	want := Position{Latitude: 48.85, Longitude: 2.35, Accuracy: 150}
	fake := &fakeAcquirer{responses: []attemptResult{
		{err: errors.New("no fix")},
		{pos: want},
	}}

	got, err := Acquire(context.Background(), fake, testConfig())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.Len(t, fake.calls, 2)
	assert.True(t, fake.calls[0].HighAccuracy)
	assert.False(t, fake.calls[1].HighAccuracy)
	assert.Greater(t, fake.calls[1].MaximumAge, fake.calls[0].MaximumAge)
}

func TestAcquire_TotalFailureClassified(t *testing.T) {
	fake := &fakeAcquirer{responses: []attemptResult{
		{err: errors.New("no fix")},
		{err: &Error{Code: CodePermissionDenied}},
	}}

	_, err := Acquire(context.Background(), fake, testConfig())
	var gErr *Error
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, CodePermissionDenied, gErr.Code)
}

func TestAcquire_HardTimeout(t *testing.T) {
	fake := &fakeAcquirer{block: true}
	cfg := testConfig()
	// Per-attempt waits that together outlast the hard timeout.
	cfg.FirstAttempt.Timeout = time.Second
	cfg.SecondAttempt.Timeout = time.Second
	cfg.HardTimeout = 80 * time.Millisecond

	start := time.Now()
	_, err := Acquire(context.Background(), fake, cfg)
	var gErr *Error
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, CodeTimeout, gErr.Code)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestErrorUserMessagesDistinct(t *testing.T) {
	codes := []ErrorCode{CodePermissionDenied, CodePositionUnavailable, CodeTimeout}
	seen := map[string]bool{}
	for _, code := range codes {
		msg := (&Error{Code: code}).UserMessage()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "message for %s duplicates another code", code)
		seen[msg] = true
	}
}
