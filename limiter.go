package blog

import (
	"sync"
	"time"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 5 * time.Minute
)

// LockoutLimiter locks out an IP address after too many failed logins.
// The lock clears once the lockout window has passed since the last failure.
type LockoutLimiter struct {
	mu      sync.Mutex
	entries map[string]*lockoutEntry
	max     int
	window  time.Duration
}

type lockoutEntry struct {
	failures int
	last     time.Time
}

// NewLockoutLimiter creates a limiter allowing max failures per window.
func NewLockoutLimiter(max int, window time.Duration) *LockoutLimiter {
	l := &LockoutLimiter{
		entries: make(map[string]*lockoutEntry),
		max:     max,
		window:  window,
	}
	go l.cleanup()
	return l
}

func (l *LockoutLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	for range ticker.C {
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, e := range l.entries {
			if e.last.Before(cutoff) {
				delete(l.entries, ip)
			}
		}
		l.mu.Unlock()
	}
}

// Locked reports whether the IP is currently locked out. Expired entries
// are cleared on the way through.
func (l *LockoutLimiter) Locked(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok {
		return false
	}
	if time.Since(e.last) >= l.window {
		delete(l.entries, ip)
		return false
	}
	return e.failures >= l.max
}

// Record registers a failed login attempt for the given IP.
func (l *LockoutLimiter) Record(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok || time.Since(e.last) >= l.window {
		e = &lockoutEntry{}
		l.entries[ip] = e
	}
	e.failures++
	e.last = time.Now()
}

// Reset clears the failure count for the given IP after a successful login.
func (l *LockoutLimiter) Reset(ip string) {
	l.mu.Lock()
	delete(l.entries, ip)
	l.mu.Unlock()
}
