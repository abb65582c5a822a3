package platform

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/bindings/pkg/errors"
	"github.com/petermattis/goid"
)

// Looper is a single-goroutine run loop that serves as the UI thread.
// Tasks posted from any goroutine run in FIFO order on the goroutine that
// called Run. A panicking task is recovered and reported through
// errors.Report as a KindPanic error so the loop keeps serving.
//
//	looper := platform.NewLooper()
//	go looper.Run(ctx)
//	looper.PostDelayed(func() { vm.ButtonText.Set("navigate") }, 2*time.Second)
type Looper struct {
	mu        sync.Mutex
	queue     []func()
	wake      chan struct{}
	done      chan struct{}
	running   atomic.Bool
	goroutine atomic.Int64
}

// NewLooper creates a looper. Call Run to start serving tasks.
func NewLooper() *Looper {
	return &Looper{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post schedules fn to run on the looper. Safe to call from any goroutine.
func (l *Looper) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// PostDelayed schedules fn to run on the looper after d.
// The returned function cancels the task if it has not been queued yet and
// reports whether it did so.
func (l *Looper) PostDelayed(fn func(), d time.Duration) (cancel func() bool) {
	if fn == nil {
		return func() bool { return false }
	}
	timer := time.AfterFunc(d, func() { l.Post(fn) })
	return timer.Stop
}

// Invoke runs fn on the looper and waits for it to finish.
// Called from the looper itself, fn runs inline. A panic in fn is returned
// as a *errors.PanicError instead of being reported.
func (l *Looper) Invoke(ctx context.Context, fn func()) error {
	if fn == nil {
		return nil
	}
	var taskErr error
	run := func() {
		defer func() {
			if r := recover(); r != nil {
				taskErr = &errors.PanicError{
					Op:         "platform.Looper.Invoke",
					Value:      r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		fn()
	}
	if l.running.Load() && l.goroutine.Load() == goid.Get() {
		run()
		return taskErr
	}

	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		run()
	})
	select {
	case <-finished:
		return taskErr
	case <-l.done:
		return ErrLooperStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run serves tasks until ctx is done. It locks the calling goroutine to its
// OS thread, marks it as the UI thread and registers Post as the dispatch
// function for the duration of the call. Run returns ctx.Err() on exit.
// A looper can be run only once.
func (l *Looper) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLooperRunning
	}
	defer close(l.done)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	id := goid.Get()
	l.goroutine.Store(id)
	MarkUIThread()
	defer uiGoroutine.CompareAndSwap(id, 0)

	prev := currentDispatch()
	RegisterDispatch(l.Post)
	defer RegisterDispatch(prev)

	for {
		l.drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Looper) drain() {
	for {
		l.mu.Lock()
		tasks := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(tasks) == 0 {
			return
		}
		for _, task := range tasks {
			l.runTask(task)
		}
	}
}

// runTask runs task, reporting a panic as a KindPanic error.
func (l *Looper) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			stack := errors.CaptureStack()
			errors.Report(&errors.BindingError{
				Op:   "platform.Looper",
				Kind: errors.KindPanic,
				Err: &errors.PanicError{
					Op:         "platform.Looper",
					Value:      r,
					StackTrace: stack,
					Timestamp:  time.Now(),
				},
				StackTrace: stack,
			})
		}
	}()
	task()
}
