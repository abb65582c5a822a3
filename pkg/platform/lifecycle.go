package platform

import "sync"

// LifecycleState represents the lifecycle state of a binding owner.
type LifecycleState string

const (
	// LifecycleStateInitialized indicates the owner exists but has not been created yet.
	LifecycleStateInitialized LifecycleState = "initialized"

	// LifecycleStateCreated indicates the owner has been created but is not yet visible.
	LifecycleStateCreated LifecycleState = "created"

	// LifecycleStateResumed indicates the owner is visible and responding to user input.
	LifecycleStateResumed LifecycleState = "resumed"

	// LifecycleStateInactive indicates the owner is transitioning (e.g., a system dialog is shown).
	LifecycleStateInactive LifecycleState = "inactive"

	// LifecycleStatePaused indicates the owner is not visible but still running.
	LifecycleStatePaused LifecycleState = "paused"

	// LifecycleStateDetached indicates the owner is still hosted but detached from any view.
	LifecycleStateDetached LifecycleState = "detached"

	// LifecycleStateDestroyed is terminal. Bindings owned by a destroyed
	// owner no longer fan out.
	LifecycleStateDestroyed LifecycleState = "destroyed"
)

// LifecycleOwner is implemented by binding owners that expose a lifecycle.
type LifecycleOwner interface {
	LifecycleState() LifecycleState
}

// LifecycleHandler is called when lifecycle state changes.
type LifecycleHandler func(state LifecycleState)

// Lifecycle holds a lifecycle state and notifies handlers on change.
// The zero value is ready to use and starts in LifecycleStateInitialized.
// Embed it in an owner to satisfy LifecycleOwner.
type Lifecycle struct {
	state    LifecycleState
	handlers []LifecycleHandler
	mu       sync.RWMutex
}

// LifecycleState returns the current lifecycle state.
func (l *Lifecycle) LifecycleState() LifecycleState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.state == "" {
		return LifecycleStateInitialized
	}
	return l.state
}

// AddHandler registers a handler to be called on lifecycle changes.
// Returns a function that can be called to remove the handler.
func (l *Lifecycle) AddHandler(handler LifecycleHandler) func() {
	if handler == nil {
		return func() {}
	}
	l.mu.Lock()
	l.handlers = append(l.handlers, handler)
	index := len(l.handlers) - 1
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		if index < len(l.handlers) {
			l.handlers[index] = nil
		}
		l.mu.Unlock()
	}
}

// IsResumed returns true if the owner is in the resumed state.
func (l *Lifecycle) IsResumed() bool {
	return l.LifecycleState() == LifecycleStateResumed
}

// IsDestroyed returns true once the owner has been destroyed.
func (l *Lifecycle) IsDestroyed() bool {
	return l.LifecycleState() == LifecycleStateDestroyed
}

// Update moves to newState and notifies handlers. Destroyed is terminal:
// updates after it are ignored.
func (l *Lifecycle) Update(newState LifecycleState) {
	l.mu.Lock()
	current := l.state
	if current == "" {
		current = LifecycleStateInitialized
	}
	if current == newState || current == LifecycleStateDestroyed {
		l.mu.Unlock()
		return
	}
	l.state = newState
	handlers := make([]LifecycleHandler, len(l.handlers))
	copy(handlers, l.handlers)
	l.mu.Unlock()

	for _, h := range handlers {
		if h != nil {
			h(newState)
		}
	}
}
