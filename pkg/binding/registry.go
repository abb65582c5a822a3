package binding

import (
	"fmt"
	"sync"
	"weak"

	"github.com/go-drift/bindings/pkg/platform"
)

// bindings is the process-wide registry. It is only touched from the UI
// thread, except for pending, which the GC cleanup path appends to.
var bindings = newRegistry()

// record is the binding state of one observable: its current owner and the
// accessors wired to each property name. A record hangs off the
// observable's handle, so writers that capture the model do not keep it
// alive.
type record struct {
	owner ownerRef
	props map[string]accessorSet
}

// ownerRef is a non-owning reference to the consumer side of a binding.
type ownerRef struct {
	resolve func() any
	typ     string
}

func weakOwner[W any](owner *W) ownerRef {
	wp := weak.Make(owner)
	return ownerRef{
		resolve: func() any {
			if p := wp.Value(); p != nil {
				return p
			}
			return nil
		},
		typ: fmt.Sprintf("%T", owner),
	}
}

// registry indexes the bound observables. It holds no strong reference to
// a handle or its record.
type registry struct {
	records map[weak.Pointer[handle]]struct{}

	pendingMu sync.Mutex
	pending   []weak.Pointer[handle]
}

func newRegistry() *registry {
	return &registry{records: make(map[weak.Pointer[handle]]struct{})}
}

// collected runs on the cleanup goroutine once an observable is unreachable.
func collected(key weak.Pointer[handle]) {
	bindings.pendingMu.Lock()
	bindings.pending = append(bindings.pending, key)
	bindings.pendingMu.Unlock()
}

// sweep drops index entries of observables the GC has collected.
func (r *registry) sweep() {
	r.pendingMu.Lock()
	pending := r.pending
	r.pending = nil
	r.pendingMu.Unlock()
	for _, key := range pending {
		delete(r.records, key)
	}
}

func (r *registry) get(h *handle) *record {
	r.sweep()
	return h.rec
}

// live returns the record for h if its owner can still be resolved,
// evicting it otherwise. active is false when the owner reports a
// destroyed lifecycle; such records are kept until replaced or removed.
func (r *registry) live(h *handle) (rec *record, active bool) {
	rec = r.get(h)
	if rec == nil {
		return nil, false
	}
	owner := rec.owner.resolve()
	if owner == nil {
		log().Debug("owner is gone, evicting binding", "observable", h, "owner", rec.owner.typ)
		r.remove(h)
		return nil, false
	}
	if lo, ok := owner.(platform.LifecycleOwner); ok && lo.LifecycleState() == platform.LifecycleStateDestroyed {
		log().Debug("owner lifecycle state isn't appropriate for binding",
			"observable", h, "owner", rec.owner.typ, "state", platform.LifecycleStateDestroyed)
		return rec, false
	}
	return rec, true
}

// establish replaces any record for h with a fresh, empty one.
func (r *registry) establish(h *handle, owner ownerRef) *record {
	r.sweep()
	rec := &record{owner: owner, props: make(map[string]accessorSet)}
	h.rec = rec
	r.records[h.key()] = struct{}{}
	return rec
}

func (r *registry) remove(h *handle) {
	r.sweep()
	h.rec = nil
	delete(r.records, h.key())
}

// lookup returns the accessors for name when the binding of h is live and
// active. It never creates accessors.
func lookup[T comparable](r *registry, h *handle, name string) *accessors[T] {
	rec, active := r.live(h)
	if !active {
		return nil
	}
	acc, _ := rec.props[name].(*accessors[T])
	return acc
}

// accessorsFor fetches or creates the accessors for name in rec.
func accessorsFor[T comparable](rec *record, name string, kind Kind) *accessors[T] {
	if acc, ok := rec.props[name].(*accessors[T]); ok {
		return acc
	}
	acc := &accessors[T]{name: name, kind: kind}
	rec.props[name] = acc
	return acc
}
