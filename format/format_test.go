package format

import "testing"

func TestBytes(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1048576, "5.0 MB"},
		{1073741824, "1.00 GB"},
		{1610612736, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Bytes(tt.n); got != tt.want {
				t.Errorf("Bytes(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestSpeed(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B/s"},
		{512, "512 B/s"},
		{1024, "1.0 KB/s"},
		{125000, "122.1 KB/s"},
		{1048576, "1.0 MB/s"},
		{3 * 1048576 / 2, "1.5 MB/s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Speed(tt.n); got != tt.want {
				t.Errorf("Speed(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{3599, "00:59:59"},
		{86399, "23:59:59"},
		{86400, "1d 00:00:00"},
		{90061, "1d 01:01:01"},
		{2 * 86400, "2d 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Uptime(tt.seconds); got != tt.want {
				t.Errorf("Uptime(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
