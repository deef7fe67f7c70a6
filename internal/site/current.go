package site

import (
	"sync/atomic"
	"time"
)

// Current holds the site value readers should use. A reload builds a new
// *Site and calls Store; readers that already called Load keep their value.
type Current struct {
	p        atomic.Pointer[Site]
	loadedAt atomic.Int64
}

// NewCurrent returns a holder initialised with s.
func NewCurrent(s *Site) *Current {
	c := &Current{}
	c.Store(s)
	return c
}

func (c *Current) Load() *Site { return c.p.Load() }

func (c *Current) Store(s *Site) {
	c.p.Store(s)
	c.loadedAt.Store(time.Now().UnixNano())
}

// LoadedAt is the time of the last Store.
func (c *Current) LoadedAt() time.Time {
	return time.Unix(0, c.loadedAt.Load())
}
