package netdev

import (
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/natrouter/routerhud/stats"
)

func writeCounter(t *testing.T, root, ifc, name, value string) {
	t.Helper()
	dir := filepath.Join(root, ifc, "statistics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(value), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReaderSumsInterfaces(t *testing.T) {
	root := t.TempDir()
	writeCounter(t, root, "wlan0", "rx_bytes", "1000\n")
	writeCounter(t, root, "wlan0", "tx_bytes", "200\n")
	writeCounter(t, root, "eth0", "rx_bytes", "50\n")
	writeCounter(t, root, "eth0", "tx_bytes", "5\n")

	r := &Reader{Interfaces: []string{"wlan0", "eth0"}, root: root}
	rx, tx, err := r.TotalBytes()
	if err != nil {
		t.Fatalf("TotalBytes() failed: %v", err)
	}
	if rx != 1050 || tx != 205 {
		t.Errorf("TotalBytes() = (%d, %d), want (1050, 205)", rx, tx)
	}
}

func TestReaderMissingInterfaceContributesZero(t *testing.T) {
	root := t.TempDir()
	writeCounter(t, root, "wlan0", "rx_bytes", "1000")
	writeCounter(t, root, "wlan0", "tx_bytes", "200")

	r := &Reader{Interfaces: []string{"wlan0", "gone0"}, root: root}
	rx, tx, err := r.TotalBytes()
	if err != nil {
		t.Fatalf("TotalBytes() failed: %v", err)
	}
	if rx != 1000 || tx != 200 {
		t.Errorf("TotalBytes() = (%d, %d), want (1000, 200)", rx, tx)
	}
}

func TestReaderAllUnavailable(t *testing.T) {
	r := &Reader{Interfaces: []string{"gone0"}, root: t.TempDir()}
	if _, _, err := r.TotalBytes(); err == nil {
		t.Error("TotalBytes should fail when every interface is unavailable")
	}
}

func TestNewReaderValidation(t *testing.T) {
	if _, err := NewReader(); err == nil {
		t.Error("NewReader should fail without interfaces")
	}
	if _, err := NewReader("wlan0"); err != nil {
		t.Errorf("NewReader(wlan0) failed: %v", err)
	}
}

const arpTable = `IP address       HW type     Flags       HW address            Mask     Device
192.168.4.2      0x1         0x2         aa:bb:cc:dd:ee:ff     *        wlan0
192.168.4.3      0x1         0x0         00:00:00:00:00:00     *        wlan0
192.168.4.4      0x1         0x2         11:22:33:44:55:66     *        eth0
10.0.0.9         0x1         0x2         de:ad:be:ef:00:01     *        wlan0
`

func TestParseARP(t *testing.T) {
	tests := []struct {
		name   string
		device string
		want   []stats.ClientInfo
	}{
		{
			name:   "all devices",
			device: "",
			want: []stats.ClientInfo{
				{MAC: stats.MAC{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, IP: netip.MustParseAddr("192.168.4.2")},
				{MAC: stats.MAC{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}, IP: netip.MustParseAddr("192.168.4.4")},
				{MAC: stats.MAC{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}, IP: netip.MustParseAddr("10.0.0.9")},
			},
		},
		{
			name:   "filtered by device",
			device: "wlan0",
			want: []stats.ClientInfo{
				{MAC: stats.MAC{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, IP: netip.MustParseAddr("192.168.4.2")},
				{MAC: stats.MAC{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}, IP: netip.MustParseAddr("10.0.0.9")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseARP(strings.NewReader(arpTable), tt.device)
			if err != nil {
				t.Fatalf("parseARP() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseARP() returned %d entries, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestARPSourceReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arp")
	if err := os.WriteFile(path, []byte(arpTable), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &ARPSource{Device: "eth0", path: path}
	got, err := src.Clients()
	if err != nil {
		t.Fatalf("Clients() failed: %v", err)
	}
	if len(got) != 1 || got[0].IP != netip.MustParseAddr("192.168.4.4") {
		t.Errorf("Clients() = %+v, want the single eth0 entry", got)
	}
}
