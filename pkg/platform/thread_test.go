package platform

import "testing"

func TestIsUIThread(t *testing.T) {
	ResetUIThread()
	if IsUIThread() {
		t.Fatal("no goroutine should be the UI thread before MarkUIThread")
	}

	SetupTestUIThread(t.Cleanup)
	if !IsUIThread() {
		t.Fatal("expected caller to be the UI thread after SetupTestUIThread")
	}

	other := make(chan bool)
	go func() { other <- IsUIThread() }()
	if <-other {
		t.Error("another goroutine must not be treated as the UI thread")
	}
}

func TestDispatch(t *testing.T) {
	RegisterDispatch(nil)
	if Dispatch(func() {}) {
		t.Error("Dispatch should report false without a registered function")
	}

	SetupTestUIThread(t.Cleanup)
	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("Dispatch should report true with a registered function")
	}
	if !ran {
		t.Error("synchronous test dispatch should run the callback inline")
	}
	if Dispatch(nil) {
		t.Error("Dispatch(nil) should report false")
	}
}
