package core

import (
	"sync"
	"time"

	"github.com/dchest/uniuri"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"heapvis/internal/heap"
)

// Session is one live heap with its identity. The heap engine assumes a
// single owner, so every operation takes the session mutex.
type Session struct {
	ID        string
	CreatedAt time.Time

	h        *heap.Heap[int64]
	m        sync.Mutex
	lastUsed atomic.Int64
}

func (s *Session) touch() {
	s.lastUsed.Store(time.Now().Unix())
}

func (s *Session) Polarity() heap.Polarity {
	return s.h.Polarity()
}

func (c *Core) CreateSession(p heap.Polarity) (*Session, error) {
	if c.sessions.Size() >= c.Config.App.MaxSessions {
		return nil, ErrTooManySessions
	}

	s := &Session{
		ID:        uniuri.New(),
		CreatedAt: time.Now(),
		h:         heap.New[int64](p),
	}
	s.touch()

	c.sessions.Store(s.ID, s)
	log.Info().Msgf("session %s created (%s heap)", s.ID, p)

	return s, nil
}

func (c *Core) DropSession(id string) error {
	if _, ok := c.sessions.LoadAndDelete(id); !ok {
		return ErrNotFound
	}

	log.Info().Msgf("session %s dropped", id)

	return nil
}

func (c *Core) get(id string) (*Session, error) {
	s, ok := c.sessions.Load(id)
	if !ok {
		return nil, ErrNotFound
	}

	return s, nil
}

type Stat struct {
	Sessions   int    `json:"sessions"`
	Operations uint64 `json:"operations"`
}

// Stat reports the live session count and the number of heap operations
// served since start.
func (c *Core) Stat() Stat {
	return Stat{
		Sessions:   c.sessions.Size(),
		Operations: c.ops.Load(),
	}
}
