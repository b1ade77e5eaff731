// Package heap provides an implementation of a binary heap whose mutations
// can be observed step by step.
// A binary heap is a tree stored in an array: the root lives at index 0 and
// the children of index i live at 2i+1 and 2i+2. Every parent precedes its
// children per the configured polarity (min-first or max-first). Each
// structural exchange is reported to an Observer so a caller can render the
// intermediate states.
package heap

import (
	"cmp"
	"errors"
	"slices"

	"github.com/negrel/assert"
)

// ErrEmpty is returned by DeleteRoot on a zero-length heap.
var ErrEmpty = errors.New("heap is empty")

// Polarity decides the comparison direction. It is fixed at construction.
type Polarity uint8

const (
	Min Polarity = iota
	Max
)

func (p Polarity) String() string {
	if p == Max {
		return "max"
	}
	return "min"
}

// ParsePolarity maps the user-facing "min"/"max" selection to a Polarity.
func ParsePolarity(s string) (Polarity, error) {
	switch s {
	case "min", "":
		return Min, nil
	case "max":
		return Max, nil
	}

	return Min, errors.New("polarity must be `min` or `max`")
}

// Heap implements an observable binary heap.
// An instance has a single logical owner and must not be used concurrently.
type Heap[T cmp.Ordered] struct {
	data     []T
	polarity Polarity
}

func New[T cmp.Ordered](p Polarity) *Heap[T] {
	return &Heap[T]{
		data:     make([]T, 0),
		polarity: p,
	}
}

// Build replaces the heap content with a copy of values and restores heap
// order bottom-up. The raw, not yet heap-ordered layout is reported first
// with no swapped pair, then one event per exchange. Empty and
// single-element inputs need no sifting but still produce the initial event.
func (h *Heap[T]) Build(values []T, obs Observer[T]) {
	h.data = slices.Clone(values)
	h.emit(obs, nil)

	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i, obs)
	}
}

// Insert appends v and sifts it up toward the root.
func (h *Heap[T]) Insert(v T, obs Observer[T]) {
	h.data = append(h.data, v)
	h.up(len(h.data)-1, obs)
}

// DeleteRoot removes and returns the root element, moving the last element
// into its place and sifting it down. Returns ErrEmpty on an empty heap
// without mutating anything or emitting any event.
func (h *Heap[T]) DeleteRoot(obs Observer[T]) (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	root := h.data[0]
	last := h.data[len(h.data)-1]
	h.data = h.data[:len(h.data)-1]

	if len(h.data) != 0 {
		h.data[0] = last
		h.down(0, obs)
	}

	return root, nil
}

// Snapshot returns a copy of the current element array. No events, no
// mutation.
func (h *Heap[T]) Snapshot() []T {
	return slices.Clone(h.data)
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

func (h *Heap[T]) Polarity() Polarity {
	return h.polarity
}

// less is the only place polarity matters: strict `<` for Min, strict `>`
// for Max. Strictness keeps equal keys in place, so event sequences stay
// deterministic.
func (h *Heap[T]) less(a, b T) bool {
	if h.polarity == Max {
		return a > b
	}
	return a < b
}

// down sifts index i toward the leaves. The left child is inspected first;
// the right child supersedes it only when strictly preferred over the
// already-selected candidate.
func (h *Heap[T]) down(i int, obs Observer[T]) {
	for {
		left, right := 2*i+1, 2*i+2
		if left >= len(h.data) || left < 0 { // `left < 0` in case of overflow
			break
		}

		j := i
		if h.less(h.data[left], h.data[j]) {
			j = left
		}
		if right < len(h.data) && h.less(h.data[right], h.data[j]) {
			j = right
		}

		if j == i {
			break
		}

		h.swap(i, j, obs)
		i = j
	}
}

// up sifts index i toward the root while it precedes its parent.
func (h *Heap[T]) up(i int, obs Observer[T]) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}

		h.swap(i, parent, obs)
		i = parent
	}
}

func (h *Heap[T]) swap(i, j int, obs Observer[T]) {
	assert.True(0 <= i && i < len(h.data))
	assert.True(0 <= j && j < len(h.data))

	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.emit(obs, &Swap{A: i, B: j})
}

// emit hands the observer a copy of the array, so a recording observer can
// keep the slice without it being mutated by later steps.
func (h *Heap[T]) emit(obs Observer[T], swapped *Swap) {
	if obs == nil {
		return
	}

	obs.OnState(slices.Clone(h.data), swapped)
}
