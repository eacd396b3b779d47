// Package allstars defines options, sentinel errors and the result type of
// the all-optimal-paths search.
//
// Options:
//
//	– MaxExpansions: optional cap on expanded states (0 = unlimited, the default).
//	– Logger:        logr.Logger receiving V(1) summaries and V(2) per-expansion detail.
//
// Errors (sentinel):
//
//	– ErrNilFunc           if connections, heuristic or isGoal is nil.
//	– ErrNegativeWeight    if connections emits a negative edge cost.
//	– ErrNegativeHeuristic if the heuristic returns a negative estimate.
//	– ErrExpansionLimit    if MaxExpansions is exceeded.
//	– ErrBadMaxExpansions  if MaxExpansions is negative (panics in WithMaxExpansions).
//
// Unreachable goals are not an error: the result is simply empty.
package allstars

import (
	"errors"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Search and AllOptimalPaths.
var (
	// ErrNilFunc indicates that a required callback is nil.
	ErrNilFunc = errors.New("allstars: connections, heuristic and isGoal must be non-nil")

	// ErrNegativeWeight indicates that a negative edge cost was produced.
	ErrNegativeWeight = errors.New("allstars: negative edge weight encountered")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("allstars: negative heuristic estimate")

	// ErrExpansionLimit indicates that the search expanded more states than allowed.
	ErrExpansionLimit = errors.New("allstars: expansion limit exceeded")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to a negative value.
	ErrBadMaxExpansions = errors.New("allstars: MaxExpansions must be non-negative")
)

// Result is the outcome of an all-optimal-paths search.
//
//   - Found: whether any goal was reached.
//   - Cost:  the minimum goal cost (0 when Found is false).
//   - Goals: every distinct goal state reached at Cost, in the order popped.
//   - Paths: every simple path from the start to a goal in Goals costing exactly Cost.
//     Paths are grouped by goal in Goals order.
type Result[S comparable, C constraints.Integer] struct {
	Found bool
	Cost  C
	Goals []S
	Paths [][]S
}

// Options configures the behavior of Search.
type Options struct {
	MaxExpansions int         // 0 means unlimited
	Logger        logr.Logger // default logr.Discard()
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded states. 0 disables the cap.
// Panics with ErrBadMaxExpansions if n is negative.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithLogger routes diagnostics to log.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// DefaultOptions returns the defaults: no expansion cap, discarding logger.
func DefaultOptions() Options {
	return Options{Logger: logr.Discard()}
}
