package clock

// Source returns the current instant as milliseconds since 1970-01-01T00:00:00Z.
// Implementations must be safe for concurrent use and cheap enough to call in
// a tight loop.
type Source interface {
	NowMS() int64
}

// Func adapts an ordinary function to a Source.
type Func func() int64

func (f Func) NowMS() int64 { return f() }
