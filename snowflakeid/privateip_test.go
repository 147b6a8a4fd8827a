package snowflakeid

import (
	"fmt"
	"testing"

	"github.com/forestrie/go-flakeid/clock"
	"github.com/stretchr/testify/require"
)

func TestNodeIDFromPrivateIP(t *testing.T) {
	tests := []struct {
		optional string
		cidr     string
		podIP    string
		nodeBits uint8
		want     int64
		wantErr  error
	}{
		{"", "10.2.0.0/22", "10.2.3.4", 10, 3*(1<<8) + 4, nil},
		{"", "0.0.0.0/24", "10.2.3.4", 10, 4, nil},
		{"", "0.0.0.0/23", "10.2.3.4", 10, 1*(1<<8) + 4, nil},
		{"", "0.0.0.0/16", "192.168.3.4", 16, 3*(1<<8) + 4, nil},
		{"", "0.0.0.0/31", "172.16.0.3", 1, 1, nil},

		{"err not private ip", "0.0.0.0/24", "1.2.3.4", 10, 0, ErrBadPodIP},
		{"err unparsable ip", "0.0.0.0/24", "10.2.3", 10, 0, ErrBadPodIP},
		{"err ipv6 pod", "0.0.0.0/24", "fd00::1", 10, 0, ErrBadPodIP},
		{"err unparsable cidr", "0.0.0.0/33", "10.2.3.4", 10, 0, ErrBadWorkerCIDR},
		{"err ipv6 cidr", "fd00::/120", "10.2.3.4", 10, 0, ErrBadWorkerCIDR},
		{"err to many ips", "0.0.0.0/16", "10.2.3.4", 10, 0, ErrMaskRange},
		{"err to few ips", "0.0.0.0/32", "10.2.3.4", 10, 0, ErrMaskRange},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%scidr=%s,ip=%s", tt.optional, tt.cidr, tt.podIP), func(t *testing.T) {
			got, err := NodeIDFromPrivateIP(tt.cidr, tt.podIP, tt.nodeBits)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewNode_WorkerCIDR(t *testing.T) {
	cfg := DefaultConfig(0)
	cfg.WorkerCIDR = "10.2.0.0/22"
	cfg.PodIP = "10.2.3.4"

	n, err := NewNode(cfg, WithClock(clock.NewManual(testNowMS)))
	require.NoError(t, err)
	require.Equal(t, int64(772), n.NodeID())
	require.Equal(t, int64(772), n.NodeOf(n.Generate()))

	cfg.NodeID = 5
	_, err = NewNode(cfg, WithClock(clock.NewManual(testNowMS)))
	require.ErrorIs(t, err, ErrConfigConflict)
}
