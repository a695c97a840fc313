// Package iterate provides generic higher-order operations over single-pass
// record streams: Each, Every, Filter, Find, Invoke, Map, Reject, Some,
// modelled after the classic shell/underscore iteration helpers.
//
// # Overview
//
// A stream is an [iter.Seq][T] — ordered, finite, forward-only, and consumed
// at most once per operation. Records of any type T are evaluated by a
// caller-supplied [Predicate] (or [Iteratee] for Map), passed explicitly as a
// function value:
//
//	lines := iterate.Lines(os.Stdin)
//	numeric, _ := iterate.Filter(lines, iterate.Where(func(s string) bool {
//	    _, err := strconv.Atoi(s)
//	    return err == nil
//	}))
//
// # Pass / fail as status
//
// A Predicate returns an error: nil means the record passes, non-nil means
// it does not. This keeps the three-way outcome model of shell predicates,
// where every invocation yields an exit status:
//
//	nil error          ↔ status 0 (pass)
//	false / ErrNotFound ↔ status 1 (logical negative: no match, not all true)
//	ErrNilPredicate    ↔ status 2 (usage error, caller omitted the callable)
//	any other error    ↔ the predicate's own status, propagated unchanged
//
// Each, Map, and Invoke surface the callable's failure verbatim so the
// caller can match it with [errors.Is] against its own taxonomy; Every, Some,
// Filter, and Reject treat any failure as a plain "no".
//
// # Two calling styles
//
// Shell iteration helpers traditionally accept both plain one-argument
// predicates and pre-built template expressions referencing a shared
// variable. Both styles are available as explicit adapters:
//
//	// Positional: the record is passed to the function.
//	pred := iterate.Where(func(s string) bool { return s != "" })
//
//	// Template: the record is published to a shared variable first,
//	// then a zero-argument expression runs.
//	var line string
//	pred = iterate.Bind(&line, func() error {
//	    if strings.HasPrefix(line, "#") {
//	        return errors.New("comment")
//	    }
//	    return nil
//	})
//
// # Short-circuiting
//
// Each, Every, Find, Map, and Some stop pulling records as soon as the
// overall outcome is decided. Filter, Reject, and Partition always scan the
// whole stream. Output produced before a short-circuit is kept, never rolled
// back.
//
// # Invoke
//
// [Invoke] is deliberately different from the per-record operations: it
// collects the entire stream first and calls its target exactly once with
// all records as the full positional argument list — the "apply" pattern.
//
// # Concurrency
//
// All operations are synchronous and single-goroutine: one record is fully
// handled before the next is pulled. Distinct calls share no state.
//
// Portability note: Each/Every/Filter/Find/Map/Reject/Some map 1-to-1 to
// their underscore.js / Ruby Enumerable namesakes; in POSIX shell they are
// `while read` loops over stdin with a predicate command per line.
package iterate
