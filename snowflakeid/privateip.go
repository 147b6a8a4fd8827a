package snowflakeid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"net"
)

var (
	ErrBadWorkerCIDR = errors.New("provided worker CIDR is invalid")
	ErrBadPodIP      = errors.New("pod ip invalid")
	ErrMaskRange     = errors.New("the specified CIDR mask allows for to many or too few private ip addresses")
)

// NodeIDFromPrivateIP returns the host part of podIP under workerCIDR as a
// node id. For example with a worker CIDR of 10.2.0.0/22 the pod 10.2.3.4 is
// node 3*256 + 4.
//
// The CIDR must leave at least one and at most nodeBits host bits, so that
// every address in the worker subnet maps to a distinct, in range, node id.
// Only IPv4 is supported.
func NodeIDFromPrivateIP(workerCIDR, podIP string, nodeBits uint8) (int64, error) {

	hostMask, err := parseHostMask(workerCIDR, nodeBits)
	if err != nil {
		return 0, err
	}
	ip, err := parseIP(podIP)
	if err != nil {
		return 0, err
	}

	host := ip.Mask(hostMask)
	return int64(binary.BigEndian.Uint32(host)), nil
}

// parseHostMask parses the CIDR which configures how many bits of the pod
// address are used for the node id, and returns the inverse of its mask. It
// errors if the configuration doesn't fit the node bits.
func parseHostMask(workerCIDR string, nodeBits uint8) (net.IPMask, error) {
	_, ipNet, err := net.ParseCIDR(workerCIDR)
	if err != nil {
		return nil, fmt.Errorf("%s - issue parsing CIDR: %w: %w", workerCIDR, ErrBadWorkerCIDR, err)
	}
	if len(ipNet.Mask) != net.IPv4len {
		return nil, fmt.Errorf("%s - not an IPv4 CIDR: %w", workerCIDR, ErrBadWorkerCIDR)
	}

	mask := invertIPMask(ipNet.Mask)
	hostBits := bits.Len32(binary.BigEndian.Uint32(mask))
	if hostBits > int(nodeBits) {
		return nil, fmt.Errorf("%s - allows to many ips for %d node bits: %w", workerCIDR, nodeBits, ErrMaskRange)
	}
	if hostBits == 0 {
		return nil, fmt.Errorf("%s - allows to few ips: %w", workerCIDR, ErrMaskRange)
	}
	return mask, nil
}

// invertIPMask  inverts the mask in place and also returns it
func invertIPMask(mask net.IPMask) net.IPMask {
	for i := range mask {
		mask[i] = ^mask[i]
	}
	return mask
}

// parseIP parses a pod ip address and requires that it is allocated from a known private ip range.
func parseIP(podIP string) (net.IP, error) {
	ip := net.ParseIP(podIP)
	if ip == nil {
		return nil, fmt.Errorf("%s - issue parsing IP: %w", podIP, ErrBadPodIP)
	}
	if !ip.IsPrivate() {
		return nil, fmt.Errorf("%s - is not a private ip: %w", podIP, ErrBadPodIP)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, fmt.Errorf("%s - is not an IPv4 address: %w", podIP, ErrBadPodIP)
	}
	return ip4, nil
}
