// Package progress estimates the completion time of a file scan from
// the observed per-file rate.
package progress

import (
	"math"
	"sync"
	"time"
)

// Snapshot is one point-in-time view of a running scan.
type Snapshot struct {
	Total     int           `json:"total"`
	Done      int           `json:"done"`
	Remaining int           `json:"remaining"`
	Rate      float64       `json:"rate_per_sec"`
	ETA       time.Duration `json:"eta"`
	Warmup    bool          `json:"warmup"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Config tunes the estimator. Zero fields fall back to defaults.
type Config struct {
	Alpha          float64       // EMA smoothing factor
	WarmupSamples  int           // files before an ETA is trusted
	WarmupDuration time.Duration // minimum elapsed time before an ETA
	NotifyInterval time.Duration // throttle for redraw notifications
}

func DefaultConfig() Config {
	return Config{
		Alpha:          0.2,
		WarmupSamples:  20,
		WarmupDuration: 2 * time.Second,
		NotifyInterval: 250 * time.Millisecond,
	}
}

// Estimator smooths the instantaneous file rate with an EMA and holds
// the ETA back until enough samples arrived. Safe for concurrent use.
type Estimator struct {
	mu         sync.Mutex
	cfg        Config
	start      time.Time
	lastUpdate time.Time
	lastNotify time.Time
	total      int
	done       int
	ema        float64
}

func NewEstimator(total int, cfg Config) *Estimator {
	base := DefaultConfig()
	if cfg.Alpha > 0 {
		base.Alpha = cfg.Alpha
	}
	if cfg.WarmupSamples > 0 {
		base.WarmupSamples = cfg.WarmupSamples
	}
	if cfg.WarmupDuration > 0 {
		base.WarmupDuration = cfg.WarmupDuration
	}
	if cfg.NotifyInterval > 0 {
		base.NotifyInterval = cfg.NotifyInterval
	}
	now := time.Now()
	return &Estimator{cfg: base, start: now, lastUpdate: now, lastNotify: now, total: total}
}

// Advance records delta completed files. The second return value is
// true when the caller should redraw: at most once per NotifyInterval,
// and always on the final file.
func (e *Estimator) Advance(delta int) (Snapshot, bool) {
	if delta <= 0 {
		return e.Snapshot(), false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	now := time.Now()
	if now.Before(e.lastUpdate) {
		now = e.lastUpdate
	}
	dt := now.Sub(e.lastUpdate).Seconds()
	if dt <= 0 {
		dt = 1e-6
	}
	e.done += delta
	instant := float64(delta) / dt
	if math.IsNaN(instant) || math.IsInf(instant, 0) || instant < 0 {
		instant = 0
	}
	if e.ema == 0 {
		e.ema = instant
	} else {
		e.ema = e.cfg.Alpha*instant + (1-e.cfg.Alpha)*e.ema
	}
	e.lastUpdate = now
	snap := e.snapshotLocked(now)
	notify := now.Sub(e.lastNotify) >= e.cfg.NotifyInterval || snap.Remaining == 0
	if notify {
		e.lastNotify = now
	}
	return snap, notify
}

func (e *Estimator) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(time.Now())
}

func (e *Estimator) snapshotLocked(now time.Time) Snapshot {
	remain := e.total - e.done
	if remain < 0 {
		remain = 0
	}
	elapsed := now.Sub(e.start)
	warm := e.done >= e.cfg.WarmupSamples && elapsed >= e.cfg.WarmupDuration
	var eta time.Duration
	if warm && remain > 0 && e.ema > 0 {
		seconds := float64(remain) / e.ema
		if !math.IsNaN(seconds) && !math.IsInf(seconds, 0) && seconds >= 0 {
			eta = time.Duration(seconds * float64(time.Second))
		}
	}
	return Snapshot{
		Total:     e.total,
		Done:      e.done,
		Remaining: remain,
		Rate:      e.ema,
		ETA:       eta,
		Warmup:    !warm,
		Elapsed:   elapsed,
	}
}
