package snowflakeid

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrBitRange           = errors.New("the bit allocation for node id and sequence bits leaves no room for the timestamp")
	ErrEpochRange         = errors.New("the time is not representable relative to the configured epoch")
	ErrMilliEpochOverflow = errors.New("the id timestamp overflows an int64 when added to the epoch")
)

// Layout is the bit level arrangement of an id, most significant first:
//
//	[timestamp delta][node id][sequence]
//
// It is immutable and safe to share. The accessors are pure, they need no
// generator and no lock.
type Layout struct {
	epoch     int64
	nodeBits  uint8
	stepBits  uint8
	timeShift uint8

	nodeMax  int64
	stepMask int64
	deltaMax int64
}

func NewLayout(epoch int64, nodeBits, stepBits uint8) (Layout, error) {
	if int(nodeBits)+int(stepBits) > IDBits-MinTimeBits {
		return Layout{}, fmt.Errorf(
			"node bits %d + step bits %d exceeds %d: %w",
			nodeBits, stepBits, IDBits-MinTimeBits, ErrBitRange)
	}
	if epoch < 0 {
		return Layout{}, fmt.Errorf("epoch %d is before the unix epoch: %w", epoch, ErrEpochRange)
	}

	timeShift := nodeBits + stepBits
	return Layout{
		epoch:     epoch,
		nodeBits:  nodeBits,
		stepBits:  stepBits,
		timeShift: timeShift,
		nodeMax:   (1 << nodeBits) - 1,
		stepMask:  (1 << stepBits) - 1,
		deltaMax:  (1 << (IDBits - timeShift)) - 1,
	}, nil
}

func (l Layout) Epoch() int64    { return l.epoch }
func (l Layout) NodeBits() uint8 { return l.nodeBits }
func (l Layout) StepBits() uint8 { return l.stepBits }
func (l Layout) TimeBits() uint8 { return IDBits - l.timeShift }
func (l Layout) NodeMax() int64  { return l.nodeMax }
func (l Layout) StepMax() int64  { return l.stepMask }
func (l Layout) DeltaMax() int64 { return l.deltaMax }

// EpochTime returns the epoch as a UTC time.
func (l Layout) EpochTime() time.Time {
	return time.UnixMilli(l.epoch).UTC()
}

// Compose assembles an id. The fields are masked, callers are expected to
// have range checked them.
func (l Layout) Compose(delta, node, sequence int64) ID {
	return ID((delta&l.deltaMax)<<l.timeShift | (node&l.nodeMax)<<l.stepBits | sequence&l.stepMask)
}

// TimestampOf returns the milliseconds since the layout epoch.
func (l Layout) TimestampOf(id ID) int64 { return int64(id) >> l.timeShift }

func (l Layout) NodeOf(id ID) int64 { return (int64(id) >> l.stepBits) & l.nodeMax }

func (l Layout) SequenceOf(id ID) int64 { return int64(id) & l.stepMask }

// UnixMilli returns the milliseconds since the unix epoch at which id was
// issued.
func (l Layout) UnixMilli(id ID) (int64, error) {
	delta := l.TimestampOf(id)
	if delta > math.MaxInt64-l.epoch {
		return 0, fmt.Errorf("%d to large (when added to epoch start %d): %w", delta, l.epoch, ErrMilliEpochOverflow)
	}
	return l.epoch + delta, nil
}

// Time returns the instant, at millisecond precision, at which id was issued.
// Ids too far in the future to represent as unix milliseconds return the zero
// time.
func (l Layout) Time(id ID) time.Time {
	ms, err := l.UnixMilli(id)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// Delta converts a unix millisecond reading to a timestamp field value,
// erroring if the reading falls outside what the layout can represent.
func (l Layout) Delta(unixMS int64) (int64, error) {
	if unixMS < l.epoch {
		return 0, fmt.Errorf("%dms is before the epoch %dms: %w", unixMS, l.epoch, ErrEpochRange)
	}
	delta := unixMS - l.epoch
	if delta > l.deltaMax {
		return 0, fmt.Errorf(
			"%dms since the epoch needs more than %d timestamp bits: %w",
			delta, l.TimeBits(), ErrTimestampOverflow)
	}
	return delta, nil
}
