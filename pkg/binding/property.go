package binding

import (
	"reflect"
	"time"

	"github.com/go-drift/bindings/pkg/errors"
	"github.com/go-drift/bindings/pkg/platform"
)

// Kind is the semantic type tag of a property. It selects the default a
// read returns before any value is stored.
type Kind int

const (
	// KindOther covers structs, pointers and other comparable types.
	KindOther Kind = iota
	// KindString defaults to "".
	KindString
	// KindInt covers signed integers and defaults to 0.
	KindInt
	// KindUint covers unsigned integers and defaults to 0.
	KindUint
	// KindFloat defaults to 0.0.
	KindFloat
	// KindBool defaults to false.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "other"
	}
}

// kindOf tags T by its underlying kind, so named types such as
// type Celsius float64 report KindFloat.
func kindOf[T comparable]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	default:
		return KindOther
	}
}

// Property is a bindable value owned by an observable.
//
// Get and Set must be called on the UI thread. A property without a stored
// value and without a reader reads as the zero value of T, which for every
// Kind is its default ("" for strings, 0 for numbers, false for booleans).
type Property[T comparable] struct {
	owner *Bindable
	name  string
	kind  Kind
	value T
	valid bool
}

// NewProperty declares a property named name on obs with no stored value.
// Names must be unique per observable.
func NewProperty[T comparable](obs Observable, name string) *Property[T] {
	b := obs.bindable()
	kind := kindOf[T]()
	b.declare(name, kind)
	return &Property[T]{owner: b, name: name, kind: kind}
}

// NewPropertyWith declares a property named name on obs holding initial.
func NewPropertyWith[T comparable](obs Observable, name string, initial T) *Property[T] {
	p := NewProperty[T](obs, name)
	p.value = initial
	p.valid = true
	return p
}

// Name returns the property name used as the binding key.
func (p *Property[T]) Name() string { return p.name }

// Kind returns the property's semantic type tag.
func (p *Property[T]) Kind() Kind { return p.kind }

// Get returns the current value. When a reader is bound and its owner is
// active, the reader's result replaces the stored value first.
func (p *Property[T]) Get() T {
	ensureUIThread("binding.Get", p.name)
	if acc := lookup[T](bindings, p.owner.handle(), p.name); acc != nil && acc.reader != nil {
		log().Debug("filling from reader", "property", p.name)
		p.value = acc.reader()
		p.valid = true
	}
	if !p.valid {
		var zero T
		return zero
	}
	return p.value
}

// Set stores v and pushes it to every writer in registration order.
// Setting a value equal to the stored one does nothing.
//
// If a writer panics, the remaining writers are skipped and the panic is
// returned as a *errors.BindingError of kind KindWriter. Writers that already
// ran are not undone and the stored value keeps v.
func (p *Property[T]) Set(v T) error {
	ensureUIThread("binding.Set", p.name)
	if p.valid && p.value == v {
		return nil
	}
	p.value = v
	p.valid = true
	log().Debug("stored value has been set", "property", p.name, "value", v)

	acc := lookup[T](bindings, p.owner.handle(), p.name)
	if acc == nil {
		return nil
	}
	// A writer may bind more writers; fan out to the ones present now.
	writers := acc.writers[:len(acc.writers):len(acc.writers)]
	for _, w := range writers {
		if err := callWriter("binding.Set", p.name, w, v); err != nil {
			return err
		}
	}
	return nil
}

// callWriter invokes w, turning a panic into a KindWriter error.
func callWriter[T any](op, name string, w func(T), v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.BindingError{
				Op:       op,
				Kind:     errors.KindWriter,
				Property: name,
				Err: &errors.PanicError{
					Op:         op,
					Value:      r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				},
				Timestamp: time.Now(),
			}
		}
	}()
	w(v)
	return nil
}

func ensureUIThread(op, property string) {
	if platform.IsUIThread() {
		return
	}
	panic(&errors.BindingError{
		Op:         op,
		Kind:       errors.KindAffinity,
		Property:   property,
		Err:        errors.ErrAffinityViolation,
		StackTrace: errors.CaptureStack(),
		Timestamp:  time.Now(),
	})
}
