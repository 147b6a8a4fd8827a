package clock

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrClockError = errors.New("the reading from system time doesn't make any realistic sense")

	// The nanosecond unix time overflows an int64 on 2262
	// https://pkg.go.dev/time#Time.UnixNano. This is used for an error clause
	// that is essentially about catching serious clock configuration issues.
	UnixNanoEpochEndSentinel = time.Date(2261, 1, 1, 1, 1, 1, 1, time.UTC) // this is a year before the limit defined here
)

var sentinelMS = UnixNanoEpochEndSentinel.UnixMilli()

// System reads the host clock.
//
// The primary reading is the wall clock sampled when the System was created
// plus the process monotonic time elapsed since. That reading has the full
// resolution of the platform clock and never steps backwards when ntp adjusts
// the wall clock. If it is not plausible (a zero value System, or a reading
// past the sentinel) NowMS falls back to reading the wall clock directly.
type System struct {
	start time.Time // Will include the monotonic clock reading

	// startWallOffset is start - unix epoch, it does NOT include the monotonic reading
	startWallOffset time.Duration
}

// NewSystem samples the host clock and returns a System aligned to it.
func NewSystem() (*System, error) {

	start := time.Now() // DONT do UTC() here, as that strips the monotonic time sample

	// The practical value of this guard is defending against clock
	// configuration issues (which may manifest during VM maintenance cycles for
	// example)
	if start.After(UnixNanoEpochEndSentinel) {
		return nil, fmt.Errorf("the clock reading is close to overflowing the limit of an int64: %w", ErrClockError)
	}
	if start.Before(time.Unix(0, 0)) {
		return nil, fmt.Errorf("the clock reading %s is before the unix epoch: %w", start.UTC(), ErrClockError)
	}

	return &System{
		start:           start,
		startWallOffset: time.Duration(start.UnixNano()),
	}, nil
}

// NowMS implements Source. It panics with ErrClockError if neither the
// primary nor the fallback reading makes sense, the process can not issue ids
// on such a host.
func (s *System) NowMS() int64 {

	if !s.start.IsZero() {
		// Both now & start have a monotonic sample, so Since gives a duration
		// which preserves that.
		ms := int64((time.Since(s.start) + s.startWallOffset) / time.Millisecond)
		if plausible(ms) {
			return ms
		}
	}

	ms := time.Now().UnixMilli()
	if plausible(ms) {
		return ms
	}
	panic(fmt.Errorf("wall clock reads %dms: %w", ms, ErrClockError))
}

func plausible(ms int64) bool {
	return ms >= 0 && ms < sentinelMS
}
