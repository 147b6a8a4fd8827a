package snowflakeid

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-flakeid/clock"
)

type NodeOptions struct {
	Clock clock.Source
	Log   logger.Logger
}

// Option is a generic option type used for node construction.
// Implementations type assert to Options target record and if that fails the
// expectation they ignore the options
type Option func(any)

// WithClock replaces the host clock, normally only tests need this.
func WithClock(source clock.Source) Option {
	return func(opts any) {
		if o, ok := opts.(*NodeOptions); ok {
			o.Clock = source
		}
	}
}

// WithLogger enables logging of the node configuration and of the rare
// events in the generator (sequence exhaustion, clock regression).
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*NodeOptions); ok {
			o.Log = log
		}
	}
}
