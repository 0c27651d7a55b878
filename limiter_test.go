package blog

import (
	"testing"
	"time"
)

func TestLockoutAfterMaxFailures(t *testing.T) {
	l := NewLockoutLimiter(3, time.Minute)
	ip := "10.0.0.1"

	for i := 0; i < 2; i++ {
		l.Record(ip)
		if l.Locked(ip) {
			t.Fatalf("locked after %d failures", i+1)
		}
	}
	l.Record(ip)
	if !l.Locked(ip) {
		t.Error("not locked after max failures")
	}
}

func TestLockoutExpires(t *testing.T) {
	l := NewLockoutLimiter(1, 10*time.Millisecond)
	ip := "10.0.0.2"

	l.Record(ip)
	if !l.Locked(ip) {
		t.Fatal("not locked after failure")
	}
	time.Sleep(20 * time.Millisecond)
	if l.Locked(ip) {
		t.Error("still locked after window passed")
	}
}

func TestLockoutResetOnSuccess(t *testing.T) {
	l := NewLockoutLimiter(2, time.Minute)
	ip := "10.0.0.3"

	l.Record(ip)
	l.Record(ip)
	if !l.Locked(ip) {
		t.Fatal("not locked")
	}
	l.Reset(ip)
	if l.Locked(ip) {
		t.Error("still locked after reset")
	}
}

func TestLockoutTracksIPsIndependently(t *testing.T) {
	l := NewLockoutLimiter(1, time.Minute)

	l.Record("10.0.0.4")
	if l.Locked("10.0.0.5") {
		t.Error("unrelated IP locked")
	}
}
