package services

import (
	"fmt"
	"math"
	"time"
)

const (
	// MaxLoginFailures is the number of consecutive failed submissions
	// after which login is locked out.
	MaxLoginFailures = 5

	// LockoutPeriod is how long login stays locked after the threshold
	// is reached.
	LockoutPeriod = 15 * time.Minute
)

// LoginAttempts tracks consecutive failed login submissions. The zero
// value is the initial state: no failures, not locked.
type LoginAttempts struct {
	ConsecutiveFailures int
	LockoutUntil        time.Time
}

// Next produces the state following a login outcome. A success resets
// everything; a failure increments the counter and arms the lockout once
// the threshold is reached.
func (s LoginAttempts) Next(success bool, now time.Time) LoginAttempts {
	if success {
		return LoginAttempts{}
	}
	next := LoginAttempts{
		ConsecutiveFailures: s.ConsecutiveFailures + 1,
		LockoutUntil:        s.LockoutUntil,
	}
	if next.ConsecutiveFailures >= MaxLoginFailures {
		next.LockoutUntil = now.Add(LockoutPeriod)
	}
	return next
}

// Locked reports whether login is currently suppressed and, if so, how
// many minutes remain (rounded up).
func (s LoginAttempts) Locked(now time.Time) (bool, int) {
	if s.LockoutUntil.IsZero() || !now.Before(s.LockoutUntil) {
		return false, 0
	}
	minutes := int(math.Ceil(s.LockoutUntil.Sub(now).Minutes()))
	return true, minutes
}

// LockoutError is synthesized locally when a login is attempted during
// an active lockout. It never reaches the backend: a locked caller must
// not produce network traffic.
type LockoutError struct {
	RetryInMinutes int
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("Too many failed attempts. Please try again in %d minutes.", e.RetryInMinutes)
}
