// Package netdev implements the stats collaborator contracts on top of the
// Linux networking pseudo-filesystems: cumulative byte counters from
// /sys/class/net and connected-client snapshots from /proc/net/arp.
package netdev

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/natrouter/routerhud/stats"
)

// Reader sums the cumulative rx/tx byte counters of a set of interfaces.
// An interface that cannot be read contributes zero; only when every
// interface is unavailable does TotalBytes return an error (a transient
// condition at the Tracker).
type Reader struct {
	// Interfaces are the interface names to sum, e.g. {"wlan0", "eth0"}.
	Interfaces []string

	// root overrides /sys/class/net for tests.
	root string
}

// NewReader creates a Reader over the given interfaces.
func NewReader(interfaces ...string) (*Reader, error) {
	if len(interfaces) == 0 {
		return nil, errors.New("netdev: no interfaces")
	}
	return &Reader{Interfaces: interfaces}, nil
}

// TotalBytes implements stats.CounterSource.
func (r *Reader) TotalBytes() (rx, tx uint64, err error) {
	root := r.root
	if root == "" {
		root = "/sys/class/net"
	}

	available := 0
	for _, ifc := range r.Interfaces {
		ifRx, rxErr := readCounterFile(fmt.Sprintf("%s/%s/statistics/rx_bytes", root, ifc))
		ifTx, txErr := readCounterFile(fmt.Sprintf("%s/%s/statistics/tx_bytes", root, ifc))
		if rxErr != nil || txErr != nil {
			continue
		}
		rx += ifRx
		tx += ifTx
		available++
	}
	if available == 0 {
		return 0, 0, fmt.Errorf("netdev: no counters available for %v", r.Interfaces)
	}
	return rx, tx, nil
}

func readCounterFile(path string) (uint64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
}

// ARPSource reports the hosts present in the kernel neighbor table as the
// connected-client snapshot. Only complete entries count; incomplete ones
// are addresses the kernel probed without an answer.
type ARPSource struct {
	// Device filters entries to one interface; empty matches all.
	Device string

	// path overrides /proc/net/arp for tests.
	path string
}

// Clients implements stats.ClientSource.
func (s *ARPSource) Clients() ([]stats.ClientInfo, error) {
	path := s.path
	if path == "" {
		path = "/proc/net/arp"
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netdev: %w", err)
	}
	defer f.Close()
	return parseARP(f, s.Device)
}

// arpFlagComplete marks a resolved neighbor entry (ATF_COM).
const arpFlagComplete = 0x2

// parseARP reads the /proc/net/arp table format:
//
//	IP address  HW type  Flags  HW address         Mask  Device
//	192.168.4.2 0x1      0x2    aa:bb:cc:dd:ee:ff  *     wlan0
func parseARP(r io.Reader, device string) ([]stats.ClientInfo, error) {
	var out []stats.ClientInfo

	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		if first {
			first = false // header line
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 6 {
			continue
		}

		flags, err := strconv.ParseUint(strings.TrimPrefix(fields[2], "0x"), 16, 32)
		if err != nil || flags&arpFlagComplete == 0 {
			continue
		}
		if device != "" && fields[5] != device {
			continue
		}

		ip, err := netip.ParseAddr(fields[0])
		if err != nil {
			continue
		}
		hw, err := net.ParseMAC(fields[3])
		if err != nil || len(hw) != 6 {
			continue
		}

		var m stats.MAC
		copy(m[:], hw)
		if m.IsZero() {
			continue
		}
		out = append(out, stats.ClientInfo{MAC: m, IP: ip})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netdev: %w", err)
	}
	return out, nil
}
