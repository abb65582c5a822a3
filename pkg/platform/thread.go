package platform

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

var (
	// uiGoroutine holds the goroutine id of the designated UI thread; 0 means unset.
	uiGoroutine atomic.Int64

	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// MarkUIThread designates the calling goroutine as the UI thread.
// Every binding operation must run on it. Goroutines that talk to a native
// toolkit should also call runtime.LockOSThread; Looper.Run does both.
func MarkUIThread() {
	uiGoroutine.Store(goid.Get())
}

// ResetUIThread clears the UI thread designation. Subsequent binding
// operations fail until MarkUIThread is called again.
func ResetUIThread() {
	uiGoroutine.Store(0)
}

// IsUIThread reports whether the caller runs on the designated UI thread.
func IsUIThread() bool {
	id := uiGoroutine.Load()
	return id != 0 && id == goid.Get()
}

// RegisterDispatch sets the dispatch function used to schedule callbacks on the UI thread.
// Looper.Run registers itself; tests usually install a synchronous function.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was successfully scheduled, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

func currentDispatch() func(callback func()) {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return dispatchFunc
}
