package chainclock

import (
	"sync/atomic"
	"time"
)

// Clock supplies the monotonic block height used for loan due dates and
// record timestamps. The pool core never reads wall time directly.
type Clock interface {
	Height() uint64
}

// Interval derives a height from elapsed wall time since a genesis instant,
// one block per interval. Heights are monotonic as long as the host clock is.
type Interval struct {
	genesis  time.Time
	interval time.Duration
}

func NewInterval(genesis time.Time, interval time.Duration) *Interval {
	if interval <= 0 {
		interval = time.Second
	}
	return &Interval{genesis: genesis.UTC(), interval: interval}
}

func (c *Interval) Height() uint64 {
	elapsed := time.Now().UTC().Sub(c.genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / c.interval)
}

// Manual is a settable clock for tests.
type Manual struct {
	h atomic.Uint64
}

func NewManual(start uint64) *Manual {
	m := &Manual{}
	m.h.Store(start)
	return m
}

func (m *Manual) Height() uint64 { return m.h.Load() }

func (m *Manual) Set(h uint64) { m.h.Store(h) }

// Advance moves the height forward by n blocks.
func (m *Manual) Advance(n uint64) { m.h.Add(n) }
