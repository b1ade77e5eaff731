package core

import (
	"context"

	"heapvis/internal/heap"
	"heapvis/internal/vis"
)

// Frame is one animation step: the full array at that moment, the pair of
// indices just exchanged (absent for the raw layout frame) and the rendered
// tree. Clients replay frames at their own pace.
type Frame struct {
	Elements []int64 `json:"elements"`
	Swapped  *[2]int `json:"swapped,omitempty"`
	Dot      string  `json:"dot"`
}

// View is the current state of a heap with no highlight.
type View struct {
	Elements []int64 `json:"elements"`
	Array    string  `json:"array"`
	Dot      string  `json:"dot"`
	Size     int     `json:"size"`
}

// Build replaces the session's heap content with values and returns the
// animation, starting with the not yet heap-ordered layout.
func (c *Core) Build(ctx context.Context, id string, values []int64) ([]Frame, error) {
	if len(values) > c.Config.App.MaxListSize {
		return nil, ErrTooLarge
	}

	s, err := c.get(id)
	if err != nil {
		return nil, err
	}

	if err = c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	s.m.Lock()
	defer s.m.Unlock()

	rec := &heap.Recorder[int64]{}
	s.h.Build(values, rec)
	s.touch()
	c.ops.Inc()

	return frames(rec.Events), nil
}

func (c *Core) Insert(ctx context.Context, id string, value int64) ([]Frame, error) {
	s, err := c.get(id)
	if err != nil {
		return nil, err
	}

	if err = c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	s.m.Lock()
	defer s.m.Unlock()

	if s.h.Len() >= c.Config.App.MaxListSize {
		return nil, ErrTooLarge
	}

	rec := &heap.Recorder[int64]{}
	s.h.Insert(value, rec)
	s.touch()
	c.ops.Inc()

	return frames(rec.Events), nil
}

// DeleteRoot extracts the root. heap.ErrEmpty passes through untouched so
// the surface can report it as a warning rather than a failure.
func (c *Core) DeleteRoot(ctx context.Context, id string) (int64, []Frame, error) {
	s, err := c.get(id)
	if err != nil {
		return 0, nil, err
	}

	if err = c.sem.Acquire(ctx, 1); err != nil {
		return 0, nil, err
	}
	defer c.sem.Release(1)

	s.m.Lock()
	defer s.m.Unlock()

	rec := &heap.Recorder[int64]{}
	root, err := s.h.DeleteRoot(rec)
	if err != nil {
		return 0, nil, err
	}

	s.touch()
	c.ops.Inc()

	return root, frames(rec.Events), nil
}

// Snapshot renders the current state without mutating anything.
func (c *Core) Snapshot(id string) (View, error) {
	s, err := c.get(id)
	if err != nil {
		return View{}, err
	}

	s.m.Lock()
	elements := s.h.Snapshot()
	s.m.Unlock()

	s.touch()

	return View{
		Elements: elements,
		Array:    vis.Array(elements),
		Dot:      vis.Tree(elements, nil),
		Size:     len(elements),
	}, nil
}

func frames(events []heap.Event[int64]) []Frame {
	out := make([]Frame, 0, len(events))

	for _, e := range events {
		f := Frame{Elements: e.Elements, Dot: vis.Tree(e.Elements, e.Swapped)}
		if e.Swapped != nil {
			f.Swapped = &[2]int{e.Swapped.A, e.Swapped.B}
		}
		out = append(out, f)
	}

	return out
}
