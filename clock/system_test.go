package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystem_NowMS(t *testing.T) {
	s, err := NewSystem()
	require.NoError(t, err)

	before := time.Now().UnixMilli()
	got := s.NowMS()
	after := time.Now().UnixMilli()

	// The primary reading is aligned to the wall clock when the source is
	// created, allow a millisecond either side for the truncation of the two
	// samples.
	require.GreaterOrEqual(t, got, before-1)
	require.LessOrEqual(t, got, after+1)
}

func TestSystem_NowMSNeverDecreases(t *testing.T) {
	s, err := NewSystem()
	require.NoError(t, err)

	last := s.NowMS()
	for i := 0; i < 10000; i++ {
		now := s.NowMS()
		require.GreaterOrEqual(t, now, last)
		last = now
	}
}

func TestSystem_ZeroValueFallsBackToWallClock(t *testing.T) {
	var s System

	before := time.Now().UnixMilli()
	got := s.NowMS()
	after := time.Now().UnixMilli()

	require.GreaterOrEqual(t, got, before)
	require.LessOrEqual(t, got, after)
}

func TestManual(t *testing.T) {
	m := NewManual(1000)
	require.Equal(t, int64(1000), m.NowMS())
	require.Equal(t, int64(1005), m.Advance(5))
	m.Set(10)
	require.Equal(t, int64(10), m.NowMS())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Advance(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(810), m.NowMS())
}

func TestFunc(t *testing.T) {
	var src Source = Func(func() int64 { return 42 })
	require.Equal(t, int64(42), src.NowMS())
}
