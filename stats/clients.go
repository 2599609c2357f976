package stats

import (
	"net"
	"net/netip"
	"time"
)

// MAC is a 6-byte hardware address, comparable and usable as a map key.
type MAC [6]byte

// String formats the address as colon-separated lowercase hex.
func (m MAC) String() string {
	return net.HardwareAddr(m[:]).String()
}

// IsZero reports whether the address is all zeroes (an unclaimed table slot).
func (m MAC) IsZero() bool {
	return m == MAC{}
}

// ClientInfo is one entry of an externally supplied client snapshot.
type ClientInfo struct {
	MAC MAC
	IP  netip.Addr
}

// ClientRecord is a tracked client identity in the fixed-capacity table.
// A record whose client disappears from the snapshot is marked inactive but
// keeps its LastActive timestamp until the slot is reused.
type ClientRecord struct {
	MAC        MAC
	IP         netip.Addr
	Active     bool
	LastActive time.Time
}

// reconcile folds a client snapshot into the table: every record is first
// marked inactive, then each snapshot entry re-activates its existing slot
// (matched by MAC) or claims a free one. Slot selection prefers the earliest
// never-used slot (zero MAC); when none is left, the earliest inactive slot
// is reclaimed even if it still carries a stale address.
//
// Callers must hold the state lock.
func (t *Tracker) reconcile(snap []ClientInfo, now time.Time) {
	for i := range t.table {
		t.table[i].Active = false
	}

	for _, c := range snap {
		slot := -1
		for j := range t.table {
			if t.table[j].MAC == c.MAC {
				slot = j
				break
			}
		}
		if slot < 0 {
			for j := range t.table {
				if !t.table[j].Active && t.table[j].MAC.IsZero() {
					slot = j
					break
				}
			}
		}
		if slot < 0 {
			for j := range t.table {
				if !t.table[j].Active {
					slot = j
					break
				}
			}
		}
		if slot < 0 {
			// Table full of active clients; the entry is dropped this tick.
			continue
		}

		t.table[slot] = ClientRecord{
			MAC:        c.MAC,
			IP:         c.IP,
			Active:     true,
			LastActive: now,
		}
	}
}
