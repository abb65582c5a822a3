package platform

import (
	"context"
	"testing"
	"time"

	"github.com/go-drift/bindings/pkg/errors"
)

func startLooper(t *testing.T) *Looper {
	t.Helper()
	l := NewLooper()
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan error, 1)
	go func() { exited <- l.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-exited:
		case <-time.After(time.Second):
			t.Error("looper did not stop")
		}
		ResetForTest()
	})
	return l
}

func TestLooperRunsTasksInOrderOnUIThread(t *testing.T) {
	l := startLooper(t)

	var order []int
	onUI := true
	for i := 0; i < 5; i++ {
		l.Post(func() {
			order = append(order, i)
			onUI = onUI && IsUIThread()
		})
	}
	if err := l.Invoke(context.Background(), func() {}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	if !onUI {
		t.Error("tasks should run on the UI thread")
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("ran %d tasks, want 5", len(order))
	}
}

func TestLooperPostDelayed(t *testing.T) {
	l := startLooper(t)

	fired := make(chan bool, 1)
	l.PostDelayed(func() { fired <- IsUIThread() }, 10*time.Millisecond)

	select {
	case onUI := <-fired:
		if !onUI {
			t.Error("delayed task should run on the UI thread")
		}
	case <-time.After(time.Second):
		t.Fatal("delayed task did not run")
	}
}

func TestLooperPostDelayedCancel(t *testing.T) {
	l := startLooper(t)

	ran := false
	cancel := l.PostDelayed(func() { ran = true }, time.Hour)
	if !cancel() {
		t.Error("cancel should report true for a pending timer")
	}
	if err := l.Invoke(context.Background(), func() {}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if ran {
		t.Error("cancelled task should not run")
	}
}

func TestLooperRecoversTaskPanic(t *testing.T) {
	var reported *errors.BindingError
	errors.SetHandler(&errorRecorder{fn: func(err *errors.BindingError) { reported = err }})
	defer errors.SetHandler(nil)

	l := startLooper(t)
	l.Post(func() { panic("task failed") })

	ran := false
	if err := l.Invoke(context.Background(), func() { ran = true }); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !ran {
		t.Error("looper should keep serving after a task panic")
	}
	if reported == nil {
		t.Fatal("task panic was not reported")
	}
	if reported.Op != "platform.Looper" || reported.Kind != errors.KindPanic {
		t.Errorf("reported = %v, want panic error from platform.Looper", reported)
	}
	var perr *errors.PanicError
	if !errors.As(reported, &perr) || perr.Value != "task failed" {
		t.Errorf("reported error should wrap the panic value, got %v", reported.Err)
	}
	if reported.Timestamp.IsZero() {
		t.Error("Report should stamp the error")
	}
}

func TestLooperInvokeReturnsPanic(t *testing.T) {
	l := startLooper(t)

	err := l.Invoke(context.Background(), func() { panic("invoke failed") })
	var perr *errors.PanicError
	if !errors.As(err, &perr) {
		t.Fatalf("Invoke error = %v, want *errors.PanicError", err)
	}
	if perr.Value != "invoke failed" {
		t.Errorf("Value = %v, want %q", perr.Value, "invoke failed")
	}
}

func TestLooperRegistersDispatch(t *testing.T) {
	l := startLooper(t)
	if err := l.Invoke(context.Background(), func() {}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	done := make(chan bool, 1)
	if !Dispatch(func() { done <- IsUIThread() }) {
		t.Fatal("Dispatch should be registered while the looper runs")
	}
	if !<-done {
		t.Error("dispatched callback should run on the UI thread")
	}
}

func TestLooperRunTwice(t *testing.T) {
	l := startLooper(t)
	if err := l.Invoke(context.Background(), func() {}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if err := l.Run(context.Background()); err != ErrLooperRunning {
		t.Errorf("second Run = %v, want ErrLooperRunning", err)
	}
}

type errorRecorder struct {
	fn func(*errors.BindingError)
}

func (r *errorRecorder) HandleError(err *errors.BindingError) { r.fn(err) }

func (r *errorRecorder) HandlePanic(*errors.PanicError) {}
