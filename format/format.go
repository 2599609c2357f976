// Package format renders byte counts, throughput and uptime as the short,
// locale-independent strings shown on the status panel.
package format

import "fmt"

const (
	kib = 1 << 10
	mib = 1 << 20
	gib = 1 << 30
)

// Bytes formats a byte count with a binary unit suffix: "1023 B", "1.0 KB",
// "1.0 MB", "1.00 GB".
func Bytes(n uint64) string {
	switch {
	case n < kib:
		return fmt.Sprintf("%d B", n)
	case n < mib:
		return fmt.Sprintf("%.1f KB", float64(n)/kib)
	case n < gib:
		return fmt.Sprintf("%.1f MB", float64(n)/mib)
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/gib)
	}
}

// Speed formats a throughput in bytes per second: "512 B/s", "1.5 KB/s",
// "2.0 MB/s".
func Speed(bytesPerSec uint64) string {
	switch {
	case bytesPerSec < kib:
		return fmt.Sprintf("%d B/s", bytesPerSec)
	case bytesPerSec < mib:
		return fmt.Sprintf("%.1f KB/s", float64(bytesPerSec)/kib)
	default:
		return fmt.Sprintf("%.1f MB/s", float64(bytesPerSec)/mib)
	}
}

// Uptime formats a duration in seconds as "HH:MM:SS", prefixed with "Dd "
// when at least one full day has elapsed: Uptime(90061) == "1d 01:01:01".
func Uptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	mins := seconds % 3600 / 60
	secs := seconds % 60

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}
