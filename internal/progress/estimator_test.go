package progress

import (
	"testing"
	"time"
)

func TestEstimatorWarmupGatesETA(t *testing.T) {
	est := NewEstimator(100, Config{WarmupSamples: 5, WarmupDuration: time.Nanosecond})
	snap, _ := est.Advance(1)
	if !snap.Warmup {
		t.Fatal("one sample should still be warming up")
	}
	if snap.ETA != 0 {
		t.Fatalf("no ETA during warmup, got %v", snap.ETA)
	}
	for i := 0; i < 5; i++ {
		time.Sleep(time.Millisecond)
		snap, _ = est.Advance(1)
	}
	if snap.Warmup {
		t.Fatal("warmup should be over after enough samples")
	}
	if snap.ETA <= 0 {
		t.Fatalf("expected an ETA, got %v", snap.ETA)
	}
}

func TestEstimatorCounts(t *testing.T) {
	est := NewEstimator(3, Config{})
	est.Advance(1)
	snap, _ := est.Advance(1)
	if snap.Done != 2 || snap.Remaining != 1 {
		t.Fatalf("counts: %+v", snap)
	}
	snap, notify := est.Advance(1)
	if snap.Remaining != 0 {
		t.Fatalf("remaining: %+v", snap)
	}
	if !notify {
		t.Fatal("finishing the last item must notify")
	}
}

func TestEstimatorIgnoresNonPositiveDelta(t *testing.T) {
	est := NewEstimator(10, Config{})
	if snap, notify := est.Advance(0); notify || snap.Done != 0 {
		t.Fatalf("zero delta advanced: %+v", snap)
	}
}

func TestEstimatorNotifyThrottle(t *testing.T) {
	est := NewEstimator(1000, Config{NotifyInterval: time.Hour})
	if _, notify := est.Advance(1); notify {
		t.Fatal("first advance inside the interval should not notify")
	}
	if _, notify := est.Advance(1); notify {
		t.Fatal("second advance inside the interval should not notify")
	}
}
