// Package pool holds the label pool a bingo board is dealt from.
package pool

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyLabel is returned when an empty or whitespace-only label is added
	ErrEmptyLabel = errors.New("label is empty")

	// ErrOutOfRange is returned for an index outside the pool
	ErrOutOfRange = errors.New("index out of range")
)

// Pool is an ordered collection of labels with an optional "free" designation.
// The designated label fills the board's pre-solved free cell instead of being
// dealt with the rest. Order matters only for display; a Pool does no
// deduplication beyond what the user typed.
type Pool struct {
	labels []string
	free   int // index of the designated free label, -1 when unset
}

// New creates an empty pool with no free designation
func New() *Pool {
	return &Pool{free: -1}
}

// FromLabels creates a pool pre-filled with the given labels.
// Empty labels are rejected the same way Add rejects them.
func FromLabels(labels ...string) (*Pool, error) {
	p := New()
	for _, l := range labels {
		if err := p.Add(l); err != nil {
			return nil, fmt.Errorf("label %q: %w", l, err)
		}
	}
	return p, nil
}

// Add appends a label to the pool. Whitespace is trimmed; an empty result
// is an error rather than a silent no-op so the caller can surface it.
func (p *Pool) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyLabel
	}
	p.labels = append(p.labels, text)
	return nil
}

// Remove deletes the label at index. Removing the designated free label
// clears the designation; removing an earlier label shifts the designation
// down so it keeps naming the same label.
func (p *Pool) Remove(index int) error {
	if index < 0 || index >= len(p.labels) {
		return fmt.Errorf("remove %d: %w", index, ErrOutOfRange)
	}
	p.labels = append(p.labels[:index], p.labels[index+1:]...)
	switch {
	case index == p.free:
		p.free = -1
	case index < p.free:
		p.free--
	}
	return nil
}

// SetFree designates the label at index as the free-cell label
func (p *Pool) SetFree(index int) error {
	if index < 0 || index >= len(p.labels) {
		return fmt.Errorf("set free %d: %w", index, ErrOutOfRange)
	}
	p.free = index
	return nil
}

// ClearFree removes the free designation
func (p *Pool) ClearFree() {
	p.free = -1
}

// Len returns the number of labels in the pool
func (p *Pool) Len() int {
	return len(p.labels)
}

// Labels returns a copy of the pool's labels in insertion order
func (p *Pool) Labels() []string {
	out := make([]string, len(p.labels))
	copy(out, p.labels)
	return out
}

// Label returns the label at index; ok is false when index is out of range
func (p *Pool) Label(index int) (string, bool) {
	if index < 0 || index >= len(p.labels) {
		return "", false
	}
	return p.labels[index], true
}

// FreeIndex returns the index of the designated free label, if any
func (p *Pool) FreeIndex() (int, bool) {
	if p.free < 0 {
		return 0, false
	}
	return p.free, true
}

// FreeLabel returns the designated free label, if any
func (p *Pool) FreeLabel() (string, bool) {
	if p.free < 0 {
		return "", false
	}
	return p.labels[p.free], true
}

// BodyLabels returns the labels that get dealt onto the board: every label
// except the single designated free occurrence. With no designation this is
// all labels.
func (p *Pool) BodyLabels() []string {
	if p.free < 0 {
		return p.Labels()
	}
	out := make([]string, 0, len(p.labels)-1)
	out = append(out, p.labels[:p.free]...)
	out = append(out, p.labels[p.free+1:]...)
	return out
}
