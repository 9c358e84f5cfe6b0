package ratelimit

import (
	"testing"
	"time"
)

func TestAllow_ExactlyMaxWithinWindow(t *testing.T) {
	now := time.Now()
	l := NewWithClock(3, time.Minute, func() time.Time { return now })

	for i := 0; i < 3; i++ {
		if !l.Allow("k") {
			t.Fatalf("attempt %d rejected", i+1)
		}
	}
	if l.Allow("k") {
		t.Fatalf("over-limit attempt allowed")
	}
}

func TestAllow_RejectedAttemptsNotCounted(t *testing.T) {
	now := time.Now()
	l := NewWithClock(2, time.Minute, func() time.Time { return now })

	l.Allow("k")
	now = now.Add(10 * time.Second)
	l.Allow("k")

	// hammer the limiter while blocked: must not extend the block
	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		if l.Allow("k") {
			t.Fatalf("blocked attempt allowed")
		}
	}

	// first counted attempt ages out at t0+60s; we are at t0+15s now
	now = now.Add(46 * time.Second)
	if !l.Allow("k") {
		t.Fatalf("expected allow after oldest attempt aged out")
	}
}

func TestAllow_WindowSlides(t *testing.T) {
	now := time.Now()
	l := NewWithClock(1, time.Minute, func() time.Time { return now })

	if !l.Allow("k") {
		t.Fatalf("first rejected")
	}
	now = now.Add(59 * time.Second)
	if l.Allow("k") {
		t.Fatalf("allowed inside window")
	}
	now = now.Add(2 * time.Second)
	if !l.Allow("k") {
		t.Fatalf("rejected after window elapsed")
	}
}

func TestAllow_KeysIndependent(t *testing.T) {
	now := time.Now()
	l := NewWithClock(1, time.Minute, func() time.Time { return now })

	if !l.Allow("a") {
		t.Fatalf("a rejected")
	}
	if !l.Allow("b") {
		t.Fatalf("b affected by a")
	}
}

func TestNew_Defaults(t *testing.T) {
	l := New(0, 0)
	if l.maxAttempts != DefaultMaxAttempts || l.window != DefaultWindow {
		t.Fatalf("defaults not applied: %d %v", l.maxAttempts, l.window)
	}
}
