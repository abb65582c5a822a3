package core

import (
	"sync"

	"github.com/go-drift/bindings/pkg/errors"
	"github.com/go-drift/bindings/pkg/platform"
)

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides the lifecycle of a binding owner.
// Embed this struct in your owner to eliminate boilerplate.
//
// StateBase is NOT safe to copy after InitState.
type StateBase struct {
	lifecycle platform.Lifecycle
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// InitState moves the owner to the resumed state.
// Override it to create bindings, calling s.StateBase.InitState() first.
func (s *StateBase) InitState() {
	s.lifecycle.Update(platform.LifecycleStateCreated)
	s.lifecycle.Update(platform.LifecycleStateResumed)
}

// Pause moves the owner to the paused state. Bindings stay active.
func (s *StateBase) Pause() {
	s.lifecycle.Update(platform.LifecycleStatePaused)
}

// Resume moves the owner back to the resumed state.
func (s *StateBase) Resume() {
	s.lifecycle.Update(platform.LifecycleStateResumed)
}

// LifecycleState returns the owner's lifecycle state.
func (s *StateBase) LifecycleState() platform.LifecycleState {
	return s.lifecycle.LifecycleState()
}

// OnLifecycleChange registers a handler for lifecycle transitions.
// Returns a function that removes the handler.
func (s *StateBase) OnLifecycleChange(handler platform.LifecycleHandler) func() {
	return s.lifecycle.AddHandler(handler)
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		// Already disposed, run cleanup immediately
		s.runDisposer(cleanup)
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// Dispose marks the owner destroyed and runs all registered disposers in
// reverse order. A panicking disposer is reported and the rest still run.
// Override it if you need custom cleanup, but always call s.StateBase.Dispose().
func (s *StateBase) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	s.lifecycle.Update(platform.LifecycleStateDestroyed)

	// Run disposers in reverse order (LIFO)
	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			s.runDisposer(disposers[i])
		}
	}
}

func (s *StateBase) runDisposer(cleanup func()) {
	defer errors.Recover("core.StateBase.Dispose")
	cleanup()
}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
