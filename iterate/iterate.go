package iterate

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Per-record operations
//
// Every operation validates its callable BEFORE pulling the first record, so
// a usage error never consumes any input. A nil stream behaves as an empty
// one: end-of-stream ends the loop normally and is never an error.
// ─────────────────────────────────────────────────────────────────────────────

// Each invokes pred for every record in order. The first failure stops
// iteration immediately and is returned unchanged, so the caller can match
// it against the predicate's own error taxonomy. Returns nil when every
// record passed (or the stream was empty).
func Each[T any](seq iter.Seq[T], pred Predicate[T]) error {
	if pred == nil {
		return ErrNilPredicate
	}
	if seq == nil {
		return nil
	}
	for record := range seq {
		if err := pred(record); err != nil {
			return err
		}
	}
	return nil
}

// Every reports whether pred passes for every record. Any predicate failure
// — whatever its reason — normalizes to false and stops iteration; the
// failure itself is not surfaced. An empty stream is vacuously true.
// The error is non-nil only for a nil predicate.
func Every[T any](seq iter.Seq[T], pred Predicate[T]) (bool, error) {
	if pred == nil {
		return false, ErrNilPredicate
	}
	if seq == nil {
		return true, nil
	}
	for record := range seq {
		if pred(record) != nil {
			return false, nil
		}
	}
	return true, nil
}

// Some reports whether pred passes for at least one record, stopping at the
// first pass. An empty stream yields false. The error is non-nil only for a
// nil predicate.
func Some[T any](seq iter.Seq[T], pred Predicate[T]) (bool, error) {
	if pred == nil {
		return false, ErrNilPredicate
	}
	if seq == nil {
		return false, nil
	}
	for record := range seq {
		if pred(record) == nil {
			return true, nil
		}
	}
	return false, nil
}

// Filter returns the records for which pred passes, in input order. The
// whole stream is scanned regardless of outcomes; predicate failures simply
// exclude their record.
func Filter[T any](seq iter.Seq[T], pred Predicate[T]) ([]T, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	out := []T{}
	if seq == nil {
		return out, nil
	}
	for record := range seq {
		if pred(record) == nil {
			out = append(out, record)
		}
	}
	return out, nil
}

// Reject returns the records for which pred fails — the complement of
// [Filter], scanning the whole stream. Filter and Reject over the same input
// partition it into two order-preserving subsequences.
func Reject[T any](seq iter.Seq[T], pred Predicate[T]) ([]T, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	return Filter(seq, func(record T) error {
		if pred(record) != nil {
			return nil
		}
		return ErrNotFound
	})
}

// Partition splits the stream in one pass: pass holds the records pred
// accepts, fail the rest, both in input order. Interleaving the two back by
// original position reconstructs the input.
func Partition[T any](seq iter.Seq[T], pred Predicate[T]) (pass, fail []T, err error) {
	if pred == nil {
		return nil, nil, ErrNilPredicate
	}
	pass, fail = []T{}, []T{}
	if seq == nil {
		return pass, fail, nil
	}
	for record := range seq {
		if pred(record) == nil {
			pass = append(pass, record)
		} else {
			fail = append(fail, record)
		}
	}
	return pass, fail, nil
}

// Find returns the first record (by input order) that pred accepts, skipping
// everything after it — the predicate is never invoked for later records.
// Returns the zero value and [ErrNotFound] when the stream is exhausted
// without a match.
func Find[T any](seq iter.Seq[T], pred Predicate[T]) (T, error) {
	var zero T
	if pred == nil {
		return zero, ErrNilPredicate
	}
	if seq == nil {
		return zero, ErrNotFound
	}
	for record := range seq {
		if pred(record) == nil {
			return record, nil
		}
	}
	return zero, ErrNotFound
}

// Map transforms every record through fn and returns the outputs in input
// order. Unlike Filter/Reject, Map short-circuits: the first iteratee
// failure stops iteration, and the outputs captured for earlier records are
// returned alongside the unchanged error — emitted output is never rolled
// back.
func Map[T, U any](seq iter.Seq[T], fn Iteratee[T, U]) ([]U, error) {
	if fn == nil {
		return nil, ErrNilPredicate
	}
	out := []U{}
	if seq == nil {
		return out, nil
	}
	for record := range seq {
		v, err := fn(record)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Batch operation
// ─────────────────────────────────────────────────────────────────────────────

// Invoke collects the entire stream, then calls fn exactly once with all
// records as its full positional argument list, in input order — the "apply"
// pattern. There is no per-record dispatch: an empty stream still produces
// one call, with no arguments. fn's error (or nil) is returned unchanged.
func Invoke[T any](seq iter.Seq[T], fn func(records ...T) error) error {
	if fn == nil {
		return ErrNilPredicate
	}
	var records []T
	if seq != nil {
		for record := range seq {
			records = append(records, record)
		}
	}
	return fn(records...)
}
