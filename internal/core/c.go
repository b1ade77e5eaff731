// Package core owns the live heap sessions behind the caller-facing
// surface. Each session holds one heap engine with a single logical owner;
// the per-session mutex serializes operations so independent sessions stay
// safely concurrent under the web server.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"

	"heapvis/internal/config"
	"heapvis/internal/pkg/tasks"
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrTooLarge        = errors.New("input list too large")
	ErrTooManySessions = errors.New("session limit reached")
)

func New(cfg config.Config) *Core {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Core{
		Config:   cfg,
		ctx:      ctx,
		cancel:   cancel,
		sessions: xsync.NewMapOf[string, *Session](),
		sem:      semaphore.NewWeighted(int64(cfg.App.MaxAnimating)),
	}

	tasks.Submit(c.janitor)

	return c
}

type Core struct {
	ctx      context.Context
	cancel   context.CancelFunc
	sessions *xsync.MapOf[string, *Session]
	sem      *semaphore.Weighted
	ops      atomic.Uint64
	Config   config.Config
}

func (c *Core) Close() {
	c.cancel()
}

// janitor drops sessions idle past the configured TTL.
func (c *Core) janitor() {
	ttl := time.Duration(c.Config.App.SessionTTLHours) * time.Hour

	t := time.NewTicker(time.Minute)
	defer t.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case now := <-t.C:
			c.sessions.Range(func(id string, s *Session) bool {
				if now.Unix()-s.lastUsed.Load() > int64(ttl.Seconds()) {
					c.sessions.Delete(id)
					log.Debug().Msgf("session %s expired", id)
				}
				return true
			})
		}
	}
}
