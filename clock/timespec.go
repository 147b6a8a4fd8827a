package clock

import "time"

const nanosPerSecond = int64(time.Second)

// Timespec is a seconds and nanoseconds pair, the shape in which platform
// clocks report time. After Normalize, Nanoseconds is in [0, 1e9).
type Timespec struct {
	Seconds     int64
	Nanoseconds int64
}

// FromTime converts t to a normalized Timespec.
func FromTime(t time.Time) Timespec {
	return Timespec{Seconds: t.Unix(), Nanoseconds: int64(t.Nanosecond())}
}

// Normalize folds out of range nanoseconds into seconds. For example
// (3s, -2_123_456_789ns) becomes (0s, 876_543_211ns).
func (ts *Timespec) Normalize() {
	if ts.Nanoseconds >= nanosPerSecond {
		ts.Seconds += ts.Nanoseconds / nanosPerSecond
		ts.Nanoseconds %= nanosPerSecond
		return
	}
	if ts.Nanoseconds < 0 {
		ts.Seconds += ts.Nanoseconds/nanosPerSecond - 1
		ts.Nanoseconds = ts.Nanoseconds%nanosPerSecond + nanosPerSecond
		if ts.Nanoseconds == nanosPerSecond {
			ts.Seconds++
			ts.Nanoseconds = 0
		}
	}
}

// UnixMilli returns the milliseconds since the unix epoch, rounded towards
// negative infinity.
func (ts Timespec) UnixMilli() int64 {
	ts.Normalize()
	return ts.Seconds*1000 + ts.Nanoseconds/int64(time.Millisecond)
}

func (ts Timespec) Time() time.Time {
	return time.Unix(ts.Seconds, ts.Nanoseconds).UTC()
}
