package heap

import "cmp"

// Swap is the pair of indices just exchanged. The order matches the
// exchange: A is the position the sift was looking at, B the position it
// moved to.
type Swap struct {
	A int
	B int
}

// Observer receives one call per structural step: the initial layout of
// Build (swapped == nil) and every exchange of a sift (swapped != nil).
// The elements slice is a copy owned by the observer. Observers may block,
// e.g. to pace an animation; the heap itself never sleeps or does I/O.
type Observer[T cmp.Ordered] interface {
	OnState(elements []T, swapped *Swap)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T cmp.Ordered] func(elements []T, swapped *Swap)

func (f ObserverFunc[T]) OnState(elements []T, swapped *Swap) {
	f(elements, swapped)
}

// Event is one recorded observer call.
type Event[T cmp.Ordered] struct {
	Elements []T
	Swapped  *Swap
}

// Recorder collects every event for later replay or assertion.
type Recorder[T cmp.Ordered] struct {
	Events []Event[T]
}

func (r *Recorder[T]) OnState(elements []T, swapped *Swap) {
	r.Events = append(r.Events, Event[T]{Elements: elements, Swapped: swapped})
}

// Discard drops all events.
type Discard[T cmp.Ordered] struct{}

func (Discard[T]) OnState([]T, *Swap) {}
