package deck

import (
	"sort"
	"testing"

	"github.com/lox/buzzbingo/internal/randutil"
)

func TestBuildLength(t *testing.T) {
	t.Parallel()
	rng := randutil.New(1)
	labels := []string{"a", "b", "c"}

	for _, count := range []int{1, 3, 7, 24, 100} {
		out, err := Build(labels, count, rng)
		if err != nil {
			t.Fatalf("Build(%d): %v", count, err)
		}
		if len(out) != count {
			t.Errorf("Build(%d) returned %d labels", count, len(out))
		}
	}
}

func TestBuildZeroCells(t *testing.T) {
	t.Parallel()
	out, err := Build(nil, 0, randutil.New(1))
	if err != nil {
		t.Fatalf("zero cells should not require labels: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty deal, got %d labels", len(out))
	}
}

func TestBuildEmptyLabels(t *testing.T) {
	t.Parallel()
	_, err := Build(nil, 5, randutil.New(1))
	if err != ErrInsufficientLabels {
		t.Errorf("expected ErrInsufficientLabels, got %v", err)
	}
}

// Every complete len(labels)-sized block of the result must be a permutation
// of the label set: each pass is a true shuffle, nothing invented or dropped.
func TestBuildBlocksArePermutations(t *testing.T) {
	t.Parallel()
	labels := []string{"a", "b", "c", "d", "e"}
	want := append([]string(nil), labels...)
	sort.Strings(want)

	rng := randutil.New(42)
	out, err := Build(labels, 24, rng)
	if err != nil {
		t.Fatal(err)
	}

	for start := 0; start+len(labels) <= len(out); start += len(labels) {
		block := append([]string(nil), out[start:start+len(labels)]...)
		sort.Strings(block)
		for i := range want {
			if block[i] != want[i] {
				t.Fatalf("block at %d is not a permutation: %v", start, out[start:start+len(labels)])
			}
		}
	}
}

func TestBuildDeterministicForSeed(t *testing.T) {
	t.Parallel()
	labels := []string{"a", "b", "c", "d"}

	first, err := Build(labels, 20, randutil.New(7))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build(labels, 20, randutil.New(7))
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different decks at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	labels := []string{"a", "b", "c"}
	if _, err := Build(labels, 9, randutil.New(3)); err != nil {
		t.Fatal(err)
	}
	if labels[0] != "a" || labels[1] != "b" || labels[2] != "c" {
		t.Errorf("input labels mutated: %v", labels)
	}
}

func TestBuildNegativePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative cell count")
		}
	}()
	_, _ = Build([]string{"a"}, -1, randutil.New(1))
}
