package helpers

import (
	"sync"
	"sync/atomic"
)

// ConcurrentBurst executes a burst of concurrent operations and waits for all to complete
func ConcurrentBurst(numOps int, opFunc func(id int) error) []error {
	var wg sync.WaitGroup
	errs := make(chan error, numOps)

	wg.Add(numOps)
	for i := 0; i < numOps; i++ {
		go func(id int) {
			defer wg.Done()
			if err := opFunc(id); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	var errList []error
	for err := range errs {
		errList = append(errList, err)
	}
	return errList
}

// RaceDetector helps detect race conditions by coordinating goroutine execution
type RaceDetector struct {
	startSignal   chan struct{}
	numWaiters    atomic.Int32
	targetWaiters int32
	once          sync.Once
}

// NewRaceDetector creates a new race detector
func NewRaceDetector(numGoroutines int) *RaceDetector {
	return &RaceDetector{
		startSignal:   make(chan struct{}),
		targetWaiters: int32(numGoroutines),
	}
}

// WaitForStart makes a goroutine wait until all goroutines are ready
func (rd *RaceDetector) WaitForStart() {
	if rd.numWaiters.Add(1) >= rd.targetWaiters {
		rd.once.Do(func() { close(rd.startSignal) })
	}
	<-rd.startSignal
}

// CoordinatedStart executes multiple operations simultaneously to detect races
func CoordinatedStart(numOps int, opFunc func(id int) error) []error {
	detector := NewRaceDetector(numOps)
	return ConcurrentBurst(numOps, func(id int) error {
		detector.WaitForStart()
		return opFunc(id)
	})
}
