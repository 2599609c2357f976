// Package stats aggregates network traffic counters and connected-client
// identities for a router status display.
//
// A Tracker samples cumulative byte counters from an injected CounterSource
// on every Update tick, derives instantaneous and peak throughput from the
// deltas, and reconciles an externally supplied client snapshot into a
// fixed-capacity table of stable slots.
//
// Update runs on the caller's periodic timer (typically one second) and may
// race with foreground reads; all aggregate state sits behind one lock that
// is acquired with a bounded wait. When the lock cannot be taken in time the
// operation degrades instead of blocking: Update skips the tick and readers
// return zeroed snapshots. On a telemetry path staleness beats stalling the
// rendering task.
package stats

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// CounterSource supplies cumulative received/transmitted byte totals,
// monotonic since some reference point (device boot or counter reset).
// An error means the source is temporarily unavailable; the Tracker keeps
// its previous values and retries on the next tick.
type CounterSource interface {
	TotalBytes() (rx, tx uint64, err error)
}

// ClientSource supplies a snapshot of currently associated clients.
type ClientSource interface {
	Clients() ([]ClientInfo, error)
}

// TrafficCounters is a read snapshot of the aggregated traffic state.
// Speeds are in bytes per second.
type TrafficCounters struct {
	RxBytes uint64 // Cumulative received bytes
	TxBytes uint64 // Cumulative transmitted bytes

	RxSpeed uint64
	TxSpeed uint64

	PeakRxSpeed uint64
	PeakTxSpeed uint64

	LastUpdate time.Time
}

// Defaults for Opts fields left zero.
const (
	DefaultMaxClients = 16
	DefaultLockWait   = 100 * time.Millisecond
)

// Opts configures a Tracker.
type Opts struct {
	// Counters is the cumulative byte-counter collaborator. Required.
	Counters CounterSource

	// Clients is the client-snapshot collaborator. Optional; when nil the
	// client table stays empty.
	Clients ClientSource

	// Now is the monotonic clock (default: time.Now).
	Now func() time.Time

	// MaxClients is the client table capacity (default: 16).
	MaxClients int

	// LockWait bounds how long any operation waits for the state lock
	// (default: 100ms).
	LockWait time.Duration

	// Logger receives warnings about degraded ticks (default: discard).
	Logger *slog.Logger
}

// Tracker owns the aggregated traffic state. Create one with New.
type Tracker struct {
	counters CounterSource
	clients  ClientSource
	now      func() time.Time
	log      *slog.Logger
	lockWait time.Duration
	start    time.Time

	sem chan struct{} // capacity 1; held = state locked

	// All fields below are guarded by sem.
	stats  TrafficCounters
	table  []ClientRecord
	prevRx uint64
	prevTx uint64
	prevAt time.Time
}

// New creates a Tracker with zeroed state. The baseline for delta
// computation starts at the current clock reading.
func New(o Opts) (*Tracker, error) {
	if o.Counters == nil {
		return nil, errors.New("stats: nil counter source")
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.MaxClients <= 0 {
		o.MaxClients = DefaultMaxClients
	}
	if o.LockWait <= 0 {
		o.LockWait = DefaultLockWait
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	now := o.Now()
	return &Tracker{
		counters: o.Counters,
		clients:  o.Clients,
		now:      o.Now,
		log:      o.Logger,
		lockWait: o.LockWait,
		start:    now,
		sem:      make(chan struct{}, 1),
		table:    make([]ClientRecord, o.MaxClients),
		prevAt:   now,
	}, nil
}

// acquire takes the state lock, waiting at most lockWait. It reports whether
// the lock was taken. A zero-value Tracker never acquires.
func (t *Tracker) acquire() bool {
	if t == nil || t.sem == nil {
		return false
	}
	// Uncontended fast path, no timer.
	select {
	case t.sem <- struct{}{}:
		return true
	default:
	}
	select {
	case t.sem <- struct{}{}:
		return true
	case <-time.After(t.lockWait):
		return false
	}
}

func (t *Tracker) release() {
	<-t.sem
}

// Update samples the counter source, recomputes throughput and peaks, and
// reconciles the latest client snapshot. It is meant to run once per tick
// from a periodic scheduler. If the state lock cannot be taken within the
// bounded wait the tick is skipped silently; the next tick retries.
func (t *Tracker) Update() {
	if !t.acquire() {
		return
	}
	defer t.release()

	now := t.now()
	elapsedMs := now.Sub(t.prevAt).Milliseconds()
	if elapsedMs < 1 {
		elapsedMs = 1
	}

	rx, tx, err := t.counters.TotalBytes()
	if err != nil {
		t.log.Warn("counter source unavailable", "error", err)
	} else {
		// Throughput is only recomputed when the cumulative totals are
		// non-decreasing; a decrease (counter reset) is no sample for this
		// tick. The baseline still moves so the next tick measures from the
		// reset value.
		if rx >= t.prevRx {
			t.stats.RxSpeed = (rx - t.prevRx) * 1000 / uint64(elapsedMs)
			if t.stats.RxSpeed > t.stats.PeakRxSpeed {
				t.stats.PeakRxSpeed = t.stats.RxSpeed
			}
		}
		if tx >= t.prevTx {
			t.stats.TxSpeed = (tx - t.prevTx) * 1000 / uint64(elapsedMs)
			if t.stats.TxSpeed > t.stats.PeakTxSpeed {
				t.stats.PeakTxSpeed = t.stats.TxSpeed
			}
		}
		t.stats.RxBytes, t.stats.TxBytes = rx, tx
		t.prevRx, t.prevTx = rx, tx
	}

	t.prevAt = now
	t.stats.LastUpdate = now

	if t.clients != nil {
		snap, err := t.clients.Clients()
		if err != nil {
			t.log.Warn("client source unavailable", "error", err)
		} else {
			t.reconcile(snap, now)
		}
	}
}

// Counters returns a snapshot of the traffic state, or a zeroed snapshot if
// the lock is unavailable within the bounded wait.
func (t *Tracker) Counters() TrafficCounters {
	if !t.acquire() {
		return TrafficCounters{}
	}
	defer t.release()
	return t.stats
}

// Clients returns the active client records in table order, truncated to
// max. It returns nil if max ≤ 0 or the lock is unavailable within the
// bounded wait.
func (t *Tracker) Clients(max int) []ClientRecord {
	if max <= 0 || !t.acquire() {
		return nil
	}
	defer t.release()

	var out []ClientRecord
	for _, rec := range t.table {
		if !rec.Active {
			continue
		}
		out = append(out, rec)
		if len(out) == max {
			break
		}
	}
	return out
}

// Reset zeroes the cumulative totals, speeds and peaks and restarts baseline
// tracking. The client table is untouched.
func (t *Tracker) Reset() {
	if !t.acquire() {
		return
	}
	defer t.release()

	t.stats = TrafficCounters{}
	t.prevRx, t.prevTx = 0, 0
	t.prevAt = t.now()
}

// ResetPeak zeroes only the peak throughput fields.
func (t *Tracker) ResetPeak() {
	if !t.acquire() {
		return
	}
	defer t.release()

	t.stats.PeakRxSpeed = 0
	t.stats.PeakTxSpeed = 0
}

// Uptime returns the elapsed time since the Tracker was created. It never
// takes the lock: the start time is immutable and the clock is contention
// free.
func (t *Tracker) Uptime() time.Duration {
	if t == nil || t.now == nil {
		return 0
	}
	return t.now().Sub(t.start)
}
