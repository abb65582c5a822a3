// Package adapters wires common widget shapes to bindable properties.
package adapters

import "github.com/go-drift/bindings/pkg/binding"

// TextView is a widget showing editable or read-only text.
type TextView interface {
	Text() string
	SetText(text string)
}

// Checkable is a widget with an on/off state, such as a switch or checkbox.
type Checkable interface {
	Checked() bool
	SetChecked(checked bool)
}

// BindText binds p to view in both directions: writes update the view,
// reads return what the view currently shows.
func BindText(p *binding.Property[string], view TextView) error {
	return binding.Bind(p, view.SetText, view.Text)
}

// BindChecked binds p to the checked state of view in both directions.
func BindChecked(p *binding.Property[bool], view Checkable) error {
	return binding.Bind(p, view.SetChecked, view.Checked)
}

// BindProperty makes other follow p. Writes to p are copied to other, and
// reads of p return other's current value.
func BindProperty[T comparable](p, other *binding.Property[T]) error {
	return binding.Bind(p, func(v T) {
		if err := other.Set(v); err != nil {
			panic(err)
		}
	}, other.Get)
}
