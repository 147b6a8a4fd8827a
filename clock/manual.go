package clock

import "sync/atomic"

// Manual is a Source whose reading only changes when told to.
type Manual struct {
	ms atomic.Int64
}

func NewManual(ms int64) *Manual {
	m := &Manual{}
	m.ms.Store(ms)
	return m
}

func (m *Manual) NowMS() int64 { return m.ms.Load() }

// Set moves the clock to ms, backwards is allowed.
func (m *Manual) Set(ms int64) { m.ms.Store(ms) }

// Advance moves the clock forward by delta milliseconds and returns the new reading.
func (m *Manual) Advance(delta int64) int64 { return m.ms.Add(delta) }
