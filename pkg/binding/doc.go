// Package binding keeps observable models and their consumers in sync
// without either side holding a strong reference to the other.
//
// A model embeds Bindable and declares its properties:
//
//	type MainViewModel struct {
//	    binding.Bindable
//	    Text       *binding.Property[string]
//	    ButtonText *binding.Property[string]
//	}
//
//	func NewMainViewModel() *MainViewModel {
//	    vm := &MainViewModel{}
//	    vm.Text = binding.NewProperty[string](vm, "text")
//	    vm.ButtonText = binding.NewPropertyWith(vm, "buttonText", "...")
//	    return vm
//	}
//
// A consumer (the owner) wires properties to its widgets inside a scope:
//
//	binding.WithScope(vm, screen, func(vm *MainViewModel) {
//	    binding.MustBind(vm.Text, label.SetText, label.Text)
//	    binding.MustBind(vm.ButtonText, button.SetText, nil)
//	})
//
// From then on, vm.Text.Set pushes the new value to every writer and
// vm.Text.Get pulls the current value from the reader.
//
// # Ownership
//
// A model's record, with its readers and writers, is stored on the model
// itself. The registry indexes models by weak reference and the record keeps
// only a weak reference to the owner, so a writer that captures its own
// model does not keep the model alive. A collected owner makes its record
// stale; the next lookup evicts it.
//
// Writers and readers are held strongly by the model. A writer that captures
// its owner, such as a method value like screen.toast, keeps that owner
// alive for as long as the model lives. An owner implementing platform.LifecycleOwner
// that reports LifecycleStateDestroyed keeps its record but receives no
// further writes.
//
// # Threading
//
// Every operation must run on the goroutine designated with
// platform.MarkUIThread (or a running platform.Looper). Calls from any other
// goroutine panic with a *errors.BindingError wrapping
// errors.ErrAffinityViolation. To update a model from a background
// goroutine, use platform.Dispatch.
package binding
