// Package dijkstra defines core types and configuration options
// for the single-source distance computation.
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; states beyond it keep the sentinel.
//	– Logger:      logr.Logger receiving V(1) summaries and V(2) per-expansion detail.
//
// Errors (sentinel):
//
//	– ErrNilFunc        if labelOf or connections is nil.
//	– ErrStartNotFound  if the start state's label is not produced by any state in the set.
//	– ErrDuplicateLabel if two states of the set share one label.
//	– ErrUnknownLabel   if connections emits a label that no state of the set carries.
//	– ErrNegativeWeight if connections emits a negative edge cost.
//	– ErrBadMaxDistance if MaxDistance is negative (panics in WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/optpath/frontier"
)

// Sentinel errors returned by Distances.
var (
	// ErrNilFunc indicates that labelOf or connections is nil.
	ErrNilFunc = errors.New("dijkstra: labelOf and connections must be non-nil")

	// ErrStartNotFound indicates that the start state is not part of the state set.
	ErrStartNotFound = errors.New("dijkstra: start state not found in state set")

	// ErrDuplicateLabel indicates that distinct states of the set share a label.
	ErrDuplicateLabel = errors.New("dijkstra: duplicate state label")

	// ErrUnknownLabel indicates that an edge points at a label outside the state set.
	ErrUnknownLabel = errors.New("dijkstra: edge to unknown label")

	// ErrNegativeWeight indicates that a negative edge cost was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// LabelEdge is an outgoing edge addressed by the label of its target state.
type LabelEdge[L comparable, C constraints.Integer] struct {
	To   L // label of the successor state
	Cost C // non-negative edge cost
}

// Unreachable returns the cost reported for states that cannot be reached
// from the start: the maximum value of C.
func Unreachable[C constraints.Integer]() C { return frontier.Infinity[C]() }

// Options configures the behavior of Distances.
//
// MaxDistance – states whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Logger – destination for diagnostic logs. Default is logr.Discard().
type Options struct {
	MaxDistance int64       // Maximum distance to explore
	Logger      logr.Logger // Diagnostics sink
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed max keep the Unreachable sentinel.
// Panics with ErrBadMaxDistance if max is negative.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		// Invalid configuration is reported early, at option construction.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger routes diagnostics to log.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance: math.MaxInt64 (explore everything reachable).
//   - Logger:      logr.Discard().
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Logger:      logr.Discard(),
	}
}
