// Package geolocation acquires a device position for location-gated
// clock-ins. Acquisition is attempted first at high accuracy with a bounded
// wait, then retried once at lower accuracy with a longer allowed cache age;
// both attempts race an independent hard timeout.
package geolocation

import (
	"context"
	"fmt"
	"time"
)

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

type ErrorCode string

const (
	CodePermissionDenied    ErrorCode = "permission_denied"
	CodePositionUnavailable ErrorCode = "position_unavailable"
	CodeTimeout             ErrorCode = "timeout"
)

// Error is a classified acquisition failure. Only total failure of both
// attempts surfaces to the caller; the low-accuracy retry is a recovery
// mechanism, not a reported error.
type Error struct {
	Code ErrorCode
}

func (e *Error) Error() string {
	return fmt.Sprintf("geolocation: %s", e.Code)
}

// UserMessage maps each failure class to a distinct operator-facing message.
func (e *Error) UserMessage() string {
	switch e.Code {
	case CodePermissionDenied:
		return "Location permission denied. Enable location access to clock in."
	case CodePositionUnavailable:
		return "Your position could not be determined. Move to an open area and try again."
	case CodeTimeout:
		return "Locating you took too long. Please try again."
	default:
		return "Location could not be acquired."
	}
}

// Options mirror the knobs a positioning backend exposes per attempt.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// Acquirer is implemented by positioning backends (a device bridge in
// production, a fake in tests).
type Acquirer interface {
	CurrentPosition(ctx context.Context, opts Options) (Position, error)
}

type Config struct {
	FirstAttempt  Options
	SecondAttempt Options
	HardTimeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		FirstAttempt: Options{
			HighAccuracy: true,
			Timeout:      10 * time.Second,
			MaximumAge:   0,
		},
		SecondAttempt: Options{
			HighAccuracy: false,
			Timeout:      20 * time.Second,
			MaximumAge:   5 * time.Minute,
		},
		HardTimeout: 30 * time.Second,
	}
}

type attemptResult struct {
	pos Position
	err error
}

// Acquire runs the two-attempt strategy. The first successful attempt wins;
// if the hard timeout fires before either settles the whole operation fails
// with CodeTimeout.
func Acquire(ctx context.Context, acquirer Acquirer, cfg Config) (Position, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.HardTimeout)
	defer cancel()

	done := make(chan attemptResult, 1)
	go func() {
		pos, err := attempt(ctx, acquirer, cfg.FirstAttempt)
		if err == nil {
			done <- attemptResult{pos: pos}
			return
		}
		pos, err = attempt(ctx, acquirer, cfg.SecondAttempt)
		done <- attemptResult{pos: pos, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return Position{}, classify(r.err)
		}
		return r.pos, nil
	case <-ctx.Done():
		return Position{}, &Error{Code: CodeTimeout}
	}
}

func attempt(ctx context.Context, acquirer Acquirer, opts Options) (Position, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	pos, err := acquirer.CurrentPosition(attemptCtx, opts)
	if err != nil {
		if attemptCtx.Err() != nil {
			return Position{}, &Error{Code: CodeTimeout}
		}
		return Position{}, err
	}
	return pos, nil
}

func classify(err error) error {
	if gErr, ok := err.(*Error); ok {
		return gErr
	}
	return &Error{Code: CodePositionUnavailable}
}
