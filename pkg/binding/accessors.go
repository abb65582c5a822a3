package binding

// accessors holds the reader and writers wired to one property of one
// observable. Writers only grow; the whole set is dropped with its record.
type accessors[T comparable] struct {
	name    string
	kind    Kind
	reader  func() T
	writers []func(T)
}

// accessorSet is the type-erased view of accessors used by the registry
// and diagnostics.
type accessorSet interface {
	describe() PropertyBinding
}

func (a *accessors[T]) describe() PropertyBinding {
	return PropertyBinding{
		Name:      a.name,
		Kind:      a.kind,
		HasReader: a.reader != nil,
		Writers:   len(a.writers),
	}
}
