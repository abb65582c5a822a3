package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrLooperRunning is returned when Run is called on a looper that is already running.
	ErrLooperRunning = errors.New("platform: looper already running")

	// ErrLooperStopped is returned by Invoke when the looper exits before running the task.
	ErrLooperStopped = errors.New("platform: looper stopped")
)
