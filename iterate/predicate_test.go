package iterate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shellkit/go-shell-utils/iterate"
)

func TestWhereTrueIsPass(t *testing.T) {
	pred := iterate.Where(func(s string) bool { return s == "yes" })
	if err := pred("yes"); err != nil {
		t.Fatalf("true should map to pass, got %v", err)
	}
	if err := pred("no"); err == nil {
		t.Fatal("false should map to a non-nil status")
	}
}

func TestWhereNilFunc(t *testing.T) {
	if iterate.Where[string](nil) != nil {
		t.Fatal("Where(nil) should yield a nil Predicate")
	}
	_, err := iterate.Filter(iterate.FromSlice([]string{"a"}), iterate.Where[string](nil))
	if !errors.Is(err, iterate.ErrNilPredicate) {
		t.Fatalf("got %v want ErrNilPredicate", err)
	}
}

func TestBindPublishesRecordBeforeEvaluation(t *testing.T) {
	var line string
	pred := iterate.Bind(&line, func() error {
		// Template style: the expression reads the shared variable, it
		// receives no argument.
		if strings.HasPrefix(line, "#") {
			return errors.New("comment")
		}
		return nil
	})

	got, err := iterate.Filter(iterate.FromSlice([]string{"# a", "b", "# c", "d"}), pred)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []string{"b", "d"})
}

func TestBindNilTarget(t *testing.T) {
	if iterate.Bind[string](nil, func() error { return nil }) != nil {
		t.Fatal("Bind(nil target) should yield a nil Predicate")
	}
	var s string
	if iterate.Bind(&s, nil) != nil {
		t.Fatal("Bind(nil fn) should yield a nil Predicate")
	}
}

func TestBindIteratee(t *testing.T) {
	var word string
	it := iterate.BindIteratee(&word, func() (string, error) {
		return strings.ToUpper(word), nil
	})
	got, err := iterate.Map(iterate.FromSlice([]string{"ab", "cd"}), it)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []string{"AB", "CD"})
}

func TestBindIterateeNilYieldsUsageError(t *testing.T) {
	var word string
	it := iterate.BindIteratee[string, string](&word, nil)
	if it != nil {
		t.Fatal("BindIteratee(nil fn) should yield a nil Iteratee")
	}
	_, err := iterate.Map(iterate.FromSlice([]string{"a"}), it)
	if !errors.Is(err, iterate.ErrNilPredicate) {
		t.Fatalf("got %v want ErrNilPredicate", err)
	}
}
