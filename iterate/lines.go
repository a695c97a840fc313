package iterate

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Stream boundaries
//
// The core operations are generic over the record type; these helpers cover
// the common case of newline-delimited text, the natural unit of iteration
// in shell pipelines. Decoding text records into richer types stays with
// the caller (compose Lines with Map).
// ─────────────────────────────────────────────────────────────────────────────

// Lines returns a single-use stream of newline-delimited records read from
// r. Line terminators are stripped. A read error ends the stream the same
// way end-of-input does, mirroring a shell `while read` loop; callers that
// must distinguish the two should wrap r themselves.
func Lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}

// LinesFromString returns a stream over the lines of s — the here-doc /
// here-string input style. A trailing newline does not produce an empty
// final record.
func LinesFromString(s string) iter.Seq[string] {
	return Lines(strings.NewReader(s))
}

// FromSlice returns a stream over the elements of records, in order. The
// slice is not copied; do not mutate it while the stream is being consumed.
func FromSlice[T any](records []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, record := range records {
			if !yield(record) {
				return
			}
		}
	}
}

// WriteLines emits each record to w followed by a line terminator — the
// output-channel convention of Filter/Map results.
func WriteLines(w io.Writer, records []string) error {
	for _, record := range records {
		if _, err := fmt.Fprintln(w, record); err != nil {
			return fmt.Errorf("iterate: write line: %w", err)
		}
	}
	return nil
}
