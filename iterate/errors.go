package iterate

import "errors"

// Sentinel errors returned by iteration operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := iterate.Find(seq, pred)
//	if errors.Is(err, iterate.ErrNotFound) {
//	    // stream exhausted without a match — expected, not a fault
//	}
var (
	// ErrNilPredicate is returned when an operation is called with a nil
	// predicate, iteratee, or invoke target. It is detected before any
	// record is read from the stream, so the stream remains unconsumed.
	// The shell-convention usage error (status 2).
	ErrNilPredicate = errors.New("iterate: predicate must not be nil")

	// ErrNotFound is returned by Find when the stream is exhausted without
	// any record satisfying the predicate. An expected outcome, not a
	// fault; the shell-convention "not found" status 1.
	ErrNotFound = errors.New("iterate: no record matched the predicate")
)
