// Package deck deals label sequences for board assembly.
package deck

import (
	"errors"
	"fmt"

	rand "math/rand/v2"
)

// ErrInsufficientLabels is returned when a deal is requested from an empty
// label set
var ErrInsufficientLabels = errors.New("no labels to deal from")

// Build returns exactly cellCount labels by concatenating independent
// Fisher-Yates shuffles of labels and truncating. Every contiguous
// len(labels) block of the result is a permutation of labels; a label may
// repeat across the seam between two blocks, which is accepted.
func Build(labels []string, cellCount int, rng *rand.Rand) ([]string, error) {
	if cellCount < 0 {
		panic(fmt.Sprintf("deck: negative cell count %d", cellCount))
	}
	if cellCount == 0 {
		return nil, nil
	}
	if len(labels) == 0 {
		return nil, ErrInsufficientLabels
	}

	passes := (cellCount + len(labels) - 1) / len(labels)
	out := make([]string, 0, passes*len(labels))
	for i := 0; i < passes; i++ {
		pass := make([]string, len(labels))
		copy(pass, labels)
		shuffle(pass, rng)
		out = append(out, pass...)
	}
	return out[:cellCount], nil
}

// shuffle permutes labels in place, uniformly
func shuffle(labels []string, rng *rand.Rand) {
	for i := len(labels) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		labels[i], labels[j] = labels[j], labels[i]
	}
}
