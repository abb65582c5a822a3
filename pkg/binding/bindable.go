package binding

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"weak"
)

// Observable is satisfied by any struct that embeds Bindable.
// WithScope, Unbind and NewProperty accept Observable so callers can pass
// the model directly.
type Observable interface {
	bindable() *Bindable
}

// Bindable gives a model its binding identity. Embed it in the model struct:
//
//	type Prefs struct {
//	    binding.Bindable
//	    Age *binding.Property[int]
//	}
//
// A Bindable must not be copied after its first property is declared.
type Bindable struct {
	h *handle
}

func (b *Bindable) bindable() *Bindable { return b }

// handle is the registry key and carries the model's binding record. It
// lives as long as the model that embeds the Bindable, so a weak pointer to
// it tracks the model's lifetime.
type handle struct {
	id    uint64
	names map[string]Kind
	rec   *record
}

var nextHandleID atomic.Uint64

func (b *Bindable) handle() *handle {
	if b.h == nil {
		h := &handle{
			id:    nextHandleID.Add(1),
			names: make(map[string]Kind),
		}
		runtime.AddCleanup(h, collected, weak.Make(h))
		b.h = h
	}
	return b.h
}

func (b *Bindable) declare(name string, kind Kind) {
	h := b.handle()
	if _, ok := h.names[name]; ok {
		panic(fmt.Sprintf("binding: property %q declared twice", name))
	}
	h.names[name] = kind
}

func (h *handle) key() weak.Pointer[handle] {
	return weak.Make(h)
}

func (h *handle) String() string {
	return fmt.Sprintf("observable#%d", h.id)
}
