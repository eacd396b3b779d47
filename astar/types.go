// Package astar defines the state-space vocabulary, options and sentinel
// errors for the A* shortest-path search.
//
// Options:
//
//	– MaxExpansions: optional cap on expanded states (0 = unlimited, the default).
//	– Logger:        logr.Logger receiving V(1) summaries and V(2) per-expansion detail.
//
// Errors (sentinel):
//
//	– ErrNoRoute           if the frontier is exhausted before any goal is reached.
//	– ErrNilFunc           if connections, heuristic or isGoal is nil.
//	– ErrNegativeWeight    if connections emits a negative edge cost.
//	– ErrNegativeHeuristic if the heuristic returns a negative estimate.
//	– ErrExpansionLimit    if MaxExpansions is exceeded.
//	– ErrBadMaxExpansions  if MaxExpansions is negative (panics in WithMaxExpansions).
package astar

import (
	"errors"

	"github.com/go-logr/logr"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Search.
var (
	// ErrNoRoute indicates that no goal state is reachable from the start.
	ErrNoRoute = errors.New("astar: no route found")

	// ErrNilFunc indicates that a required callback is nil.
	ErrNilFunc = errors.New("astar: connections, heuristic and isGoal must be non-nil")

	// ErrNegativeWeight indicates that a negative edge cost was produced.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("astar: negative heuristic estimate")

	// ErrExpansionLimit indicates that the search expanded more states than allowed.
	ErrExpansionLimit = errors.New("astar: expansion limit exceeded")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to a negative value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Edge is an outgoing transition to state To with a non-negative Cost.
type Edge[S comparable, C constraints.Integer] struct {
	To   S
	Cost C
}

// Connections lists the outgoing edges of a state. The state space is
// discovered through it on demand and may be unbounded.
type Connections[S comparable, C constraints.Integer] func(state S) []Edge[S, C]

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must never overestimate (admissible); consistency is recommended.
type Heuristic[S comparable, C constraints.Integer] func(state S) C

// Goal reports whether a state is an acceptable terminal state.
type Goal[S comparable] func(state S) bool

// Zero is the trivially admissible heuristic. With it, A* degenerates into
// Dijkstra's algorithm over the generated state space.
func Zero[S comparable, C constraints.Integer]() Heuristic[S, C] {
	return func(S) C { return 0 }
}

// Target returns a Goal matching exactly one state.
func Target[S comparable](target S) Goal[S] {
	return func(s S) bool { return s == target }
}

// Options configures the behavior of Search.
//
// MaxExpansions – stop with ErrExpansionLimit after this many expansions.
//
//	Must be ≥ 0. Default 0 means unlimited.
//
// Logger – destination for diagnostic logs. Default is logr.Discard().
type Options struct {
	MaxExpansions int
	Logger        logr.Logger
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

// DefaultOptions returns an Options struct initialized with defaults:
// no expansion cap and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Logger:        logr.Discard(),
	}
}
