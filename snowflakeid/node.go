package snowflakeid

import (
	"errors"
	"fmt"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-flakeid/clock"
)

var (
	ErrNodeRange         = errors.New("the node id is outside the range permitted by the node bits")
	ErrTimestampOverflow = errors.New("the time since the epoch no longer fits in the timestamp bits")
)

// Node generates ids for one node id. It is safe for concurrent use, all
// callers serialize on a single mutex.
type Node struct {
	layout     Layout
	node       int64
	maskedNode int64 // node shifted into its bit position
	clock      clock.Source
	log        logger.Logger

	mu sync.Mutex

	// lastTimestamp and sequence are only read or written with mu held.
	// lastTimestamp is in unix milliseconds, as read from the clock.
	lastTimestamp int64
	sequence      int64
	regressed     bool
}

// NewNode creates a generator for cfg. It fails with ErrNodeRange if the node
// id does not fit in the node bits, with ErrBitRange if the layout leaves no
// timestamp bits, and with ErrEpochRange or ErrTimestampOverflow if the
// current time can not be represented in the layout at all.
func NewNode(cfg Config, opts ...Option) (*Node, error) {

	o := NodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}

	nodeID, err := cfg.ResolveNodeID()
	if err != nil {
		return nil, err
	}
	if nodeID < 0 || nodeID > layout.NodeMax() {
		return nil, fmt.Errorf("node %d not in [0, %d]: %w", nodeID, layout.NodeMax(), ErrNodeRange)
	}

	source := o.Clock
	if source == nil {
		sys, err := clock.NewSystem()
		if err != nil {
			return nil, err
		}
		source = sys
	}

	// Catch a mis-configured epoch now rather than on the first id.
	if _, err = layout.Delta(source.NowMS()); err != nil {
		return nil, err
	}

	n := &Node{
		layout:     layout,
		node:       nodeID,
		maskedNode: nodeID << layout.StepBits(),
		clock:      source,
		log:        o.Log,

		// below any valid reading, so the first id has sequence 0
		lastTimestamp: -1,
	}
	n.infof(
		"snowflake node %d: epoch %s, node bits %d, step bits %d, timestamp bits %d",
		nodeID, layout.EpochTime(), layout.NodeBits(), layout.StepBits(), layout.TimeBits())
	return n, nil
}

// Generate returns the next id. It never returns an error, instead it panics
// if the layout can no longer represent the current time (ErrTimestampOverflow)
// which happens 2^TimeBits milliseconds after the epoch. Use NextID to handle
// that case as an error.
//
// When more than 2^StepBits ids are requested in the same millisecond the call
// busy waits, without sleeping, until the clock reaches the next millisecond.
// If the clock never advances the call never returns.
func (n *Node) Generate() ID {
	id, err := n.NextID()
	if err != nil {
		panic(err)
	}
	return id
}

// NextID returns the next id in a time ordered, unique and strictly increasing
// series for this node. On error the node state is not changed.
func (n *Node) NextID() (ID, error) {

	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.clock.NowMS()

	// A reading behind the last issued timestamp is an ntp step or similar.
	// We hold at the last timestamp and keep counting the sequence, exactly as
	// if the clock had not moved. If we exhaust the sequence while held we
	// wait for the clock to pass the last timestamp. We never move
	// lastTimestamp backwards, that is what guarantees uniqueness.
	if now < n.lastTimestamp {
		if !n.regressed {
			n.debugf("snowflake node %d: clock regressed by %dms, holding at %d", n.node, n.lastTimestamp-now, n.lastTimestamp)
		}
		n.regressed = true
		now = n.lastTimestamp
	} else {
		n.regressed = false
	}

	var sequence int64
	if now == n.lastTimestamp {
		sequence = (n.sequence + 1) & n.layout.stepMask
		if sequence == 0 {
			// The sequence is exhausted for this millisecond. Spin on the clock,
			// the wait is bounded by the remainder of the millisecond for any
			// clock that is still running.
			n.debugf("snowflake node %d: sequence exhausted at %d, waiting for the next millisecond", n.node, n.lastTimestamp)
			for now <= n.lastTimestamp {
				now = n.clock.NowMS()
			}
		}
	}

	delta, err := n.layout.Delta(now)
	if err != nil {
		return 0, err
	}

	n.lastTimestamp = now
	n.sequence = sequence
	return ID(delta<<n.layout.timeShift | n.maskedNode | sequence), nil
}

// NodeID returns the node id this generator stamps into its ids.
func (n *Node) NodeID() int64 { return n.node }

func (n *Node) Layout() Layout { return n.layout }

func (n *Node) TimestampOf(id ID) int64 { return n.layout.TimestampOf(id) }
func (n *Node) NodeOf(id ID) int64      { return n.layout.NodeOf(id) }
func (n *Node) SequenceOf(id ID) int64  { return n.layout.SequenceOf(id) }

func (n *Node) infof(format string, args ...any) {
	if n.log != nil {
		n.log.Infof(format, args...)
	}
}

func (n *Node) debugf(format string, args ...any) {
	if n.log != nil {
		n.log.Debugf(format, args...)
	}
}
