package platform

import "testing"

func TestLifecycleZeroValue(t *testing.T) {
	var l Lifecycle
	if got := l.LifecycleState(); got != LifecycleStateInitialized {
		t.Errorf("LifecycleState() = %q, want %q", got, LifecycleStateInitialized)
	}
	var _ LifecycleOwner = &l
}

func TestLifecycleHandlers(t *testing.T) {
	var l Lifecycle
	var got []LifecycleState
	remove := l.AddHandler(func(s LifecycleState) { got = append(got, s) })

	l.Update(LifecycleStateCreated)
	l.Update(LifecycleStateResumed)
	l.Update(LifecycleStateResumed)
	if !l.IsResumed() {
		t.Error("expected resumed state")
	}

	remove()
	l.Update(LifecycleStatePaused)

	want := []LifecycleState{LifecycleStateCreated, LifecycleStateResumed}
	if len(got) != len(want) {
		t.Fatalf("handler saw %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("handler call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLifecycleDestroyedIsTerminal(t *testing.T) {
	var l Lifecycle
	calls := 0
	l.AddHandler(func(LifecycleState) { calls++ })

	l.Update(LifecycleStateDestroyed)
	l.Update(LifecycleStateResumed)

	if !l.IsDestroyed() {
		t.Errorf("LifecycleState() = %q, want destroyed", l.LifecycleState())
	}
	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
}
