// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package seedseeker

// Generator is satisfied by every family's forward generator: a PRNG that
// produces non-negative, 64-bit-bounded outputs and can report a snapshot
// of its internal state.
type Generator[S any] interface {
	Next() uint64
	Snapshot() S
}

// SyncOptions tunes the synchronization driver's lookahead confirmation
// window and its search bound.
type SyncOptions struct {
	// Lookahead is how many additional outputs must agree, beyond the first
	// match, before a candidate is accepted.
	Lookahead int

	// Bound caps how many candidate steps Synchronize will try before giving
	// up and reporting not-recognized.
	Bound int
}

// SyncOption configures a SyncOptions value.
type SyncOption func(*SyncOptions)

// WithLookahead overrides the default confirmation window.
func WithLookahead(n int) SyncOption {
	return func(o *SyncOptions) { o.Lookahead = n }
}

// WithBound overrides the default candidate-step search bound.
func WithBound(n int) SyncOption {
	return func(o *SyncOptions) { o.Bound = n }
}

// DefaultSyncOptions returns the package defaults: requiring at least four
// further outputs to agree before accepting a candidate, with a generous
// search bound on how many candidate steps to try first.
func DefaultSyncOptions() SyncOptions {
	return SyncOptions{
		Lookahead: 4,
		Bound:     1 << 20,
	}
}

// Synchronize advances candidate until its next output agrees with the next
// value input produces, then requires opts.Lookahead further outputs to
// also agree. On success it returns candidate's snapshot after that
// confirmation window, so the state lines up with the last value read from
// input. If input is already exhausted, there is nothing left to
// confirm or refute the candidate against, so candidate's current snapshot
// is returned as a match. It reports not-recognized (false) if no alignment
// is found within opts.Bound candidate steps, or if the confirmation window
// fails to match.
func Synchronize[S any](input Iterator[uint64], candidate Generator[S], opts ...SyncOption) (S, bool) {
	cfg := DefaultSyncOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero S

	want, ok := input.Next()
	if !ok {
		// Every Reverse already positions candidate exactly at the caller's
		// current point; an input with nothing left to confirm against
		// means there is nothing to falsify the candidate, not that it is
		// wrong.
		return candidate.Snapshot(), true
	}

	for attempt := 0; attempt < cfg.Bound; attempt++ {
		if candidate.Next() != want {
			continue
		}

		matched := true
		for i := 0; i < cfg.Lookahead; i++ {
			nextWant, ok := input.Next()
			if !ok {
				break
			}
			if candidate.Next() != nextWant {
				matched = false
				break
			}
		}

		if !matched {
			return zero, false
		}

		return candidate.Snapshot(), true
	}

	return zero, false
}
