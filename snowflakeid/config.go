package snowflakeid

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Epoch determines our reference zero time, in milliseconds since the unix
	// epoch. Every generator whose ids are compared or merged must use the
	// same value, and it must never change once ids have been issued. Service
	// code is expected to define it as a constant, DefaultEpoch is 2018-01-01.
	Epoch int64 `yaml:"epoch"`

	// NodeBits and StepBits divide the 63 usable bits of the id. What is left
	// over, 63 - NodeBits - StepBits, is the timestamp. With the defaults
	// (10, 12) that is 41 bits, or ~69 years of milliseconds after Epoch.
	NodeBits uint8 `yaml:"nodeBits"`
	StepBits uint8 `yaml:"stepBits"`

	// NodeID must be unique across every generator sharing this layout. It is
	// the callers responsibility to guarantee that, typically by static
	// configuration.
	NodeID int64 `yaml:"nodeID"`

	// WorkerCIDR and PodIP are an alternative to NodeID: the host part of the
	// pods private ip address, under WorkerCIDR, becomes the node id. Two pods
	// in the same worker subnet can then never share a node id.
	WorkerCIDR string `yaml:"workerCIDR,omitempty"`
	PodIP      string `yaml:"podIP,omitempty"`
}

const (
	// DefaultEpoch is 2018-01-01T00:00:00Z
	DefaultEpoch    int64 = 1514764800000
	DefaultNodeBits       = 10
	DefaultStepBits       = 12

	// IDBits is the number of bits in an id. The sign bit of the int64 is never
	// used so that ids survive systems with only signed 64 bit integers.
	IDBits = 63

	// MinTimeBits is the least number of timestamp bits we permit a layout to
	// leave over.
	MinTimeBits = 1
)

var (
	ErrConfigConflict = errors.New("node id and worker CIDR are mutually exclusive")
)

// DefaultConfig returns the default layout for the given node.
func DefaultConfig(nodeID int64) Config {
	return Config{
		Epoch:    DefaultEpoch,
		NodeBits: DefaultNodeBits,
		StepBits: DefaultStepBits,
		NodeID:   nodeID,
	}
}

// Layout validates the epoch and bit widths and returns the derived layout.
func (cfg Config) Layout() (Layout, error) {
	return NewLayout(cfg.Epoch, cfg.NodeBits, cfg.StepBits)
}

// ResolveNodeID returns NodeID, or the id derived from PodIP when WorkerCIDR
// is set. The range check against NodeBits happens when the node is created.
func (cfg Config) ResolveNodeID() (int64, error) {
	if cfg.WorkerCIDR == "" {
		return cfg.NodeID, nil
	}
	if cfg.NodeID != 0 {
		return 0, fmt.Errorf("node id %d with worker CIDR %s: %w", cfg.NodeID, cfg.WorkerCIDR, ErrConfigConflict)
	}
	return NodeIDFromPrivateIP(cfg.WorkerCIDR, cfg.PodIP, cfg.NodeBits)
}

// LoadConfig reads a YAML document describing a Config. Fields which are not
// present take the defaults, unknown fields are an error so that a typo can't
// silently change the layout.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig(0)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding snowflake id config: %w", err)
	}
	if _, err := cfg.Layout(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
