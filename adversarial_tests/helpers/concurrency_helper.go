package helpers

import (
	"fmt"
	"runtime"
	"time"
)

// GoroutineSnapshot captures the state of goroutines at a point in time
type GoroutineSnapshot struct {
	Count     int
	Timestamp time.Time
}

// TakeGoroutineSnapshot captures current goroutine count
func TakeGoroutineSnapshot() *GoroutineSnapshot {
	return &GoroutineSnapshot{
		Count:     runtime.NumGoroutine(),
		Timestamp: time.Now(),
	}
}

// DetectGoroutineLeak compares two snapshots and returns an error if goroutines leaked
func DetectGoroutineLeak(before, after *GoroutineSnapshot, tolerance int) error {
	leaked := after.Count - before.Count
	if leaked > tolerance {
		return fmt.Errorf("goroutine leak detected: started with %d, ended with %d (leaked %d, tolerance %d)",
			before.Count, after.Count, leaked, tolerance)
	}
	return nil
}

// WaitForGoroutineCleanup waits for goroutines to clean up, retrying with GC
func WaitForGoroutineCleanup(maxWait time.Duration, targetCount int, tolerance int) (int, error) {
	deadline := time.Now().Add(maxWait)

	for time.Now().Before(deadline) {
		current := runtime.NumGoroutine()
		if current-targetCount <= tolerance {
			return current, nil
		}

		runtime.GC()
		time.Sleep(50 * time.Millisecond)
	}

	final := runtime.NumGoroutine()
	return final, fmt.Errorf("goroutines did not clean up within %v: expected %d±%d, got %d",
		maxWait, targetCount, tolerance, final)
}

// DeadlockDetector fails an operation that does not finish in time
type DeadlockDetector struct {
	timeout time.Duration
}

// NewDeadlockDetector creates a new deadlock detector
func NewDeadlockDetector(timeout time.Duration) *DeadlockDetector {
	return &DeadlockDetector{timeout: timeout}
}

// Run executes the function with deadlock detection
func (dd *DeadlockDetector) Run(fn func() error) error {
	errChan := make(chan error, 1)

	go func() {
		errChan <- fn()
	}()

	select {
	case err := <-errChan:
		return err
	case <-time.After(dd.timeout):
		return fmt.Errorf("operation timed out after %v (possible deadlock)", dd.timeout)
	}
}

// GenerateMaliciousRateHeaders creates pathological rate limit header
// combinations. None of them may stall the client for longer than the
// server delay cap.
func GenerateMaliciousRateHeaders() map[string]map[string]string {
	return map[string]map[string]string{
		"nan_remaining": {
			"X-Ratelimit-Remaining": "NaN",
			"X-Ratelimit-Reset":     "60",
		},
		"negative_inf_remaining": {
			"X-Ratelimit-Remaining": "-Inf",
			"X-Ratelimit-Reset":     "60",
		},
		"nan_reset": {
			"X-Ratelimit-Remaining": "0",
			"X-Ratelimit-Reset":     "NaN",
		},
		"inf_reset": {
			"X-Ratelimit-Remaining": "0",
			"X-Ratelimit-Reset":     "+Inf",
		},
		"negative_reset": {
			"X-Ratelimit-Remaining": "0",
			"X-Ratelimit-Reset":     "-60",
		},
		"invalid_format_reset": {
			"X-Ratelimit-Remaining": "0",
			"X-Ratelimit-Reset":     "soon",
		},
		"missing_reset": {
			"X-Ratelimit-Remaining": "0",
		},
		"http_date_retry_after": {
			"Retry-After": "Wed, 21 Oct 2015 07:28:00 GMT",
		},
		"nan_retry_after": {
			"Retry-After": "NaN",
		},
		"negative_retry_after": {
			"Retry-After": "-30",
		},
		"empty_headers": {},
	}
}
