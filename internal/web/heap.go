package web

import (
	"context"
	"errors"

	"github.com/swaggest/jsonrpc"
	"github.com/swaggest/usecase"

	"heapvis/internal/core"
	"heapvis/internal/heap"
	"heapvis/internal/input"
	"heapvis/internal/pkg/random"
)

type CreateSessionReq struct {
	Polarity string `json:"polarity" enum:"min,max" description:"heap order, min-first by default"`
}

type CreateSessionRes struct {
	SessionID string `json:"session_id"`
	Polarity  string `json:"polarity"`
}

func CreateSession(h *jsonrpc.Handler, c *core.Core) {
	u := usecase.NewInteractor[*CreateSessionReq, CreateSessionRes](
		func(ctx context.Context, req *CreateSessionReq, res *CreateSessionRes) error {
			p, err := heap.ParsePolarity(req.Polarity)
			if err != nil {
				return CodeError(codeInvalidInput, err)
			}

			s, err := c.CreateSession(p)
			if err != nil {
				return CodeError(codeSessionLimit, err)
			}

			*res = CreateSessionRes{SessionID: s.ID, Polarity: p.String()}
			return nil
		},
	)
	u.SetName("heap.create")
	h.Add(u)
}

type RandomSpec struct {
	Size int   `json:"size" minimum:"1" maximum:"30" description:"list size"`
	Min  int64 `json:"min" description:"lower value bound"`
	Max  int64 `json:"max" description:"upper value bound"`
}

type BuildHeapReq struct {
	SessionID string      `json:"session_id" required:"true"`
	Values    string      `json:"values" description:"comma separated integers, e.g. \"10, 20, 15\""`
	Random    *RandomSpec `json:"random,omitempty" description:"generate the input instead; wins over values"`
}

type BuildHeapRes struct {
	Input  []int64      `json:"input" description:"list the heap was built from"`
	Frames []core.Frame `json:"frames"`
}

func BuildHeap(h *jsonrpc.Handler, c *core.Core) {
	u := usecase.NewInteractor[*BuildHeapReq, BuildHeapRes](
		func(ctx context.Context, req *BuildHeapReq, res *BuildHeapRes) error {
			var values []int64

			if req.Random != nil {
				spec := *req.Random
				if spec.Size == 0 {
					spec.Size = c.Config.Random.Size
				}
				// zero bounds mean "not set": fall back to the configured range
				if spec.Min == 0 && spec.Max == 0 {
					spec.Min, spec.Max = c.Config.Random.Min, c.Config.Random.Max
				}
				values = random.Ints(spec.Size, spec.Min, spec.Max)
			} else {
				var err error
				values, err = input.ParseList(req.Values)
				if err != nil {
					return CodeError(codeInvalidInput, err)
				}
			}

			frames, err := c.Build(ctx, req.SessionID, values)
			if err != nil {
				return buildError(err)
			}

			*res = BuildHeapRes{Input: values, Frames: frames}
			return nil
		},
	)
	u.SetName("heap.build")
	h.Add(u)
}

type InsertValueReq struct {
	SessionID string `json:"session_id" required:"true"`
	Value     int64  `json:"value"`
}

type InsertValueRes struct {
	Frames []core.Frame `json:"frames"`
	Size   int          `json:"size"`
}

func InsertValue(h *jsonrpc.Handler, c *core.Core) {
	u := usecase.NewInteractor[*InsertValueReq, InsertValueRes](
		func(ctx context.Context, req *InsertValueReq, res *InsertValueRes) error {
			frames, err := c.Insert(ctx, req.SessionID, req.Value)
			if err != nil {
				return buildError(err)
			}

			v, err := c.Snapshot(req.SessionID)
			if err != nil {
				return buildError(err)
			}

			*res = InsertValueRes{Frames: frames, Size: v.Size}
			return nil
		},
	)
	u.SetName("heap.insert")
	h.Add(u)
}

type DeleteRootReq struct {
	SessionID string `json:"session_id" required:"true"`
}

type DeleteRootRes struct {
	Root   int64        `json:"root" description:"the extracted root value"`
	Frames []core.Frame `json:"frames"`
	Size   int          `json:"size"`
}

func DeleteRoot(h *jsonrpc.Handler, c *core.Core) {
	u := usecase.NewInteractor[*DeleteRootReq, DeleteRootRes](
		func(ctx context.Context, req *DeleteRootReq, res *DeleteRootRes) error {
			root, frames, err := c.DeleteRoot(ctx, req.SessionID)
			if err != nil {
				return buildError(err)
			}

			v, err := c.Snapshot(req.SessionID)
			if err != nil {
				return buildError(err)
			}

			*res = DeleteRootRes{Root: root, Frames: frames, Size: v.Size}
			return nil
		},
	)
	u.SetName("heap.deleteRoot")
	h.Add(u)
}

type SnapshotReq struct {
	SessionID string `json:"session_id" required:"true"`
}

func Snapshot(h *jsonrpc.Handler, c *core.Core) {
	u := usecase.NewInteractor[*SnapshotReq, core.View](
		func(ctx context.Context, req *SnapshotReq, res *core.View) error {
			v, err := c.Snapshot(req.SessionID)
			if err != nil {
				return buildError(err)
			}

			*res = v
			return nil
		},
	)
	u.SetName("heap.snapshot")
	h.Add(u)
}

type DropSessionReq struct {
	SessionID string `json:"session_id" required:"true"`
}

type DropSessionRes struct {
	Dropped bool `json:"dropped"`
}

func DropSession(h *jsonrpc.Handler, c *core.Core) {
	u := usecase.NewInteractor[*DropSessionReq, DropSessionRes](
		func(ctx context.Context, req *DropSessionReq, res *DropSessionRes) error {
			if err := c.DropSession(req.SessionID); err != nil {
				return buildError(err)
			}

			*res = DropSessionRes{Dropped: true}
			return nil
		},
	)
	u.SetName("heap.drop")
	h.Add(u)
}

type StatReq struct{}

func Stat(h *jsonrpc.Handler, c *core.Core) {
	u := usecase.NewInteractor[*StatReq, core.Stat](
		func(ctx context.Context, req *StatReq, res *core.Stat) error {
			*res = c.Stat()
			return nil
		},
	)
	u.SetName("heap.stat")
	h.Add(u)
}

// buildError maps domain errors onto application error codes.
func buildError(err error) error {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return CodeError(codeSessionNotFound, err)
	case errors.Is(err, heap.ErrEmpty):
		return CodeError(codeEmptyHeap, err)
	case errors.Is(err, core.ErrTooLarge):
		return CodeError(codeListTooLarge, err)
	case errors.Is(err, core.ErrTooManySessions):
		return CodeError(codeSessionLimit, err)
	}

	return err
}
