package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"heapvis/internal/config"
	"heapvis/internal/core"
	"heapvis/internal/heap"
)

func newCore(t *testing.T) *core.Core {
	t.Helper()

	c := core.New(config.Default())
	t.Cleanup(c.Close)

	return c
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	c := newCore(t)
	ctx := context.Background()

	s, err := c.CreateSession(heap.Min)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	require.Equal(t, heap.Min, s.Polarity())

	fs, err := c.Build(ctx, s.ID, []int64{3, 1, 2})
	require.NoError(t, err)
	require.NotEmpty(t, fs)

	// first frame is the raw layout
	require.Equal(t, []int64{3, 1, 2}, fs[0].Elements)
	require.Nil(t, fs[0].Swapped)
	require.Contains(t, fs[0].Dot, "digraph")

	// every later frame highlights an exchange
	for _, f := range fs[1:] {
		require.NotNil(t, f.Swapped)
		require.Contains(t, f.Dot, "#FF4B4B")
	}

	fs, err = c.Insert(ctx, s.ID, 0)
	require.NoError(t, err)
	require.Len(t, fs, 2) // 0 bubbles from index 3 to the root

	root, fs, err := c.DeleteRoot(ctx, s.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, root)
	require.NotNil(t, fs)

	v, err := c.Snapshot(s.ID)
	require.NoError(t, err)
	require.Equal(t, 3, v.Size)
	require.Len(t, v.Elements, 3)
	require.NotContains(t, v.Dot, "#FF4B4B")

	require.NoError(t, c.DropSession(s.ID))
	require.ErrorIs(t, c.DropSession(s.ID), core.ErrNotFound)

	_, err = c.Snapshot(s.ID)
	require.ErrorIs(t, err, core.ErrNotFound)

	stat := c.Stat()
	require.Equal(t, 0, stat.Sessions)
	require.EqualValues(t, 3, stat.Operations)
}

func TestDeleteRootEmpty(t *testing.T) {
	t.Parallel()

	c := newCore(t)

	s, err := c.CreateSession(heap.Max)
	require.NoError(t, err)

	_, _, err = c.DeleteRoot(context.Background(), s.ID)
	require.ErrorIs(t, err, heap.ErrEmpty)
}

func TestBuildUnknownSession(t *testing.T) {
	t.Parallel()

	c := newCore(t)

	_, err := c.Build(context.Background(), "missing", []int64{1})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestBuildTooLarge(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.App.MaxListSize = 2

	c := core.New(cfg)
	t.Cleanup(c.Close)

	s, err := c.CreateSession(heap.Min)
	require.NoError(t, err)

	_, err = c.Build(context.Background(), s.ID, []int64{1, 2, 3})
	require.ErrorIs(t, err, core.ErrTooLarge)

	_, err = c.Build(context.Background(), s.ID, []int64{2, 1})
	require.NoError(t, err)

	_, err = c.Insert(context.Background(), s.ID, 3)
	require.ErrorIs(t, err, core.ErrTooLarge)
}

func TestSessionLimit(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.App.MaxSessions = 1

	c := core.New(cfg)
	t.Cleanup(c.Close)

	_, err := c.CreateSession(heap.Min)
	require.NoError(t, err)

	_, err = c.CreateSession(heap.Min)
	require.ErrorIs(t, err, core.ErrTooManySessions)
}

func TestIndependentSessions(t *testing.T) {
	t.Parallel()

	c := newCore(t)
	ctx := context.Background()

	a, err := c.CreateSession(heap.Min)
	require.NoError(t, err)
	b, err := c.CreateSession(heap.Max)
	require.NoError(t, err)

	_, err = c.Build(ctx, a.ID, []int64{5, 1, 9})
	require.NoError(t, err)
	_, err = c.Build(ctx, b.ID, []int64{5, 1, 9})
	require.NoError(t, err)

	va, err := c.Snapshot(a.ID)
	require.NoError(t, err)
	vb, err := c.Snapshot(b.ID)
	require.NoError(t, err)

	require.EqualValues(t, 1, va.Elements[0])
	require.EqualValues(t, 9, vb.Elements[0])
}
