package tasks

import (
	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
)

var pool = lo.Must(ants.NewPool(20, ants.WithPreAlloc(true)))

// Submit runs f on the shared background pool.
func Submit(f func()) {
	lo.Must0(pool.Submit(f))
}
