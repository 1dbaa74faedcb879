// SPDX-License-Identifier: MIT
// Package: topogen/brownext
//
// options.go — functional options for Generator and Validate.

package brownext

import "log/slog"

// Mode identifies the replication strategy of a round.
type Mode int

const (
	// ModeClusterZero replicates cluster 0 (r0 rounds).
	ModeClusterZero Mode = iota + 1
	// ModeNeighbourhood replicates a quadric closed neighbourhood (r1 rounds).
	ModeNeighbourhood
)

// String returns "cluster0" or "neighbourhood".
func (m Mode) String() string {
	switch m {
	case ModeClusterZero:
		return "cluster0"
	case ModeNeighbourhood:
		return "neighbourhood"
	default:
		return "unknown"
	}
}

// ReplicaEvent describes one replica right after its neighbourhood was
// mirrored. OriginDegree == ReplicaDegree always holds for delivered events.
type ReplicaEvent struct {
	Round         int
	Mode          Mode
	Origin        int
	Replica       int
	OriginDegree  int
	ReplicaDegree int
}

// Option configures a Generator (and the logger of Validate).
type Option func(*Options)

// Options holds Generator settings. The zero value is not ready for use;
// start from DefaultOptions.
type Options struct {
	// Strict rejects conflicting rounds instead of overriding them.
	Strict bool
	// InvariantChecks enables O(V+E) consistency scans after layout and
	// after extension.
	InvariantChecks bool
	// OnReplica observes every replica creation.
	OnReplica func(ReplicaEvent)
	// Logger receives debug records per round and validation diagnostics.
	Logger *slog.Logger
}

// DefaultOptions returns overriding rounds, no invariant scans, no hook and
// slog.Default().
func DefaultOptions() Options {
	return Options{
		OnReplica: func(ReplicaEvent) {},
		Logger:    slog.Default(),
	}
}

// WithStrictRounds rejects r0 > 0 together with r1 > 0, and r0 > 1 for even
// q, with ErrConflictingRounds.
func WithStrictRounds() Option {
	return func(o *Options) { o.Strict = true }
}

// WithInvariantChecks enables the debug consistency scans.
func WithInvariantChecks() Option {
	return func(o *Options) { o.InvariantChecks = true }
}

// WithOnReplica registers a replica observer. Panics on nil.
func WithOnReplica(fn func(ReplicaEvent)) Option {
	if fn == nil {
		panic("brownext: WithOnReplica(nil)")
	}
	return func(o *Options) { o.OnReplica = fn }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
