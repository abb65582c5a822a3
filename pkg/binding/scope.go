package binding

import (
	"time"

	"github.com/go-drift/bindings/pkg/errors"
)

// WithScope installs a fresh binding record for obs owned by owner and then
// runs configure with obs, where Bind calls wire individual properties.
//
// Any previous record for obs is discarded, including its writers and
// reader, even when owner is the same. Rebinding the same owner is logged
// at info level. owner is held weakly: once it is garbage collected the
// record is evicted on the next access.
//
// Scopes nest: configure may call WithScope for another observable, and
// both records stay live independently.
func WithScope[O Observable, W any](obs O, owner *W, configure func(O)) {
	ensureUIThread("binding.WithScope", "")
	h := obs.bindable().handle()

	if rec, _ := bindings.live(h); rec != nil && rec.owner.resolve() == any(owner) {
		log().Info("already bound to this owner, rebinding", "observable", h, "owner", rec.owner.typ)
	}
	bindings.establish(h, weakOwner(owner))
	log().Debug("binding scope established", "observable", h)

	if configure != nil {
		configure(obs)
	}
}

// Bind wires writer, and optionally reader, to p. It must be called while a
// record for p's observable exists, normally inside WithScope.
//
// writer is called once with the current value before it is registered, so
// a new consumer starts in sync. Binding the same writer twice registers it
// twice. A property accepts at most one reader; a second one fails with
// errors.ErrDuplicateReader after the writer has been registered.
func Bind[T comparable](p *Property[T], writer func(T), reader func() T) error {
	ensureUIThread("binding.Bind", p.name)
	rec := bindings.get(p.owner.handle())
	if rec == nil {
		return &errors.BindingError{
			Op:        "binding.Bind",
			Kind:      errors.KindBinding,
			Property:  p.name,
			Err:       errors.ErrNoScope,
			Timestamp: time.Now(),
		}
	}
	acc := accessorsFor[T](rec, p.name, p.kind)
	log().Debug("bind", "property", p.name)

	if writer != nil {
		if err := callWriter("binding.Bind", p.name, writer, p.Get()); err != nil {
			return err
		}
		acc.writers = append(acc.writers, writer)
	}

	if reader != nil {
		if acc.reader != nil {
			return &errors.BindingError{
				Op:        "binding.Bind",
				Kind:      errors.KindBinding,
				Property:  p.name,
				Err:       errors.ErrDuplicateReader,
				Timestamp: time.Now(),
			}
		}
		acc.reader = reader
	}
	return nil
}

// MustBind is like Bind but panics on error.
func MustBind[T comparable](p *Property[T], writer func(T), reader func() T) {
	if err := Bind(p, writer, reader); err != nil {
		panic(err)
	}
}

// Unbind removes the binding record of obs regardless of its owner's state.
func Unbind(obs Observable) {
	ensureUIThread("binding.Unbind", "")
	h := obs.bindable().handle()
	bindings.remove(h)
	log().Debug("unbound", "observable", h)
}

// IsBound reports whether obs has a record whose owner is still alive.
// A record whose owner was collected is evicted by this call.
func IsBound(obs Observable) bool {
	ensureUIThread("binding.IsBound", "")
	h := obs.bindable().handle()
	rec, _ := bindings.live(h)
	return rec != nil
}
