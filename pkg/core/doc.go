// Package core provides a base type for binding owners.
//
// An owner is the consuming side of a binding, typically a screen. Embed
// StateBase in it to get a lifecycle the binding engine understands and
// automatic cleanup on disposal:
//
//	type mainScreen struct {
//	    core.StateBase
//	    label *TextLabel
//	}
//
//	func (s *mainScreen) InitState() {
//	    s.StateBase.InitState()
//	    core.UseBindable(s, viewModel, func(vm *MainViewModel) {
//	        adapters.BindText(vm.Text, s.label)
//	    })
//	}
//
// After Dispose the owner reports platform.LifecycleStateDestroyed, so
// later mutations of the model no longer reach its widgets.
package core
