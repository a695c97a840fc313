package iterate

// Predicate evaluates one record. A nil return means the record passes;
// a non-nil return means it does not, with the error value carrying the
// predicate's own failure taxonomy (opaque to this package).
//
// Predicates are plain function values injected by the caller — there is no
// name registry or ambient lookup. Build one directly, or through the
// [Where] and [Bind] adapters.
type Predicate[T any] func(record T) error

// Iteratee transforms one record into an output value for [Map]. A non-nil
// error stops the Map short and is propagated unchanged.
type Iteratee[T, U any] func(record T) (U, error)

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

// Where adapts a plain boolean function into a [Predicate]: true becomes a
// pass, false becomes a generic non-match. This is the positional calling
// style — the record is handed to the function as its one argument.
func Where[T any](fn func(T) bool) Predicate[T] {
	if fn == nil {
		return nil
	}
	return func(record T) error {
		if fn(record) {
			return nil
		}
		return ErrNotFound
	}
}

// Bind adapts a zero-argument expression into a [Predicate]: before each
// evaluation the current record is stored into *target, then fn runs. This
// is the template calling style — the expression reads the record from a
// shared variable instead of taking it as an argument:
//
//	var line string
//	pred := iterate.Bind(&line, func() error {
//	    return exec.Command("grep", "-q", "TODO", line).Run()
//	})
//
// target must not be nil; a nil target or fn yields a nil Predicate, which
// every operation reports as [ErrNilPredicate].
func Bind[T any](target *T, fn func() error) Predicate[T] {
	if target == nil || fn == nil {
		return nil
	}
	return func(record T) error {
		*target = record
		return fn()
	}
}

// BindIteratee is the template-style counterpart of [Bind] for [Map]: the
// current record is published to *target before the zero-argument iteratee
// produces its output.
func BindIteratee[T, U any](target *T, fn func() (U, error)) Iteratee[T, U] {
	if target == nil || fn == nil {
		return nil
	}
	return func(record T) (U, error) {
		*target = record
		return fn()
	}
}
