package core

import (
	"github.com/go-drift/bindings/pkg/binding"
)

// UseBindable binds obs to the owner s and runs configure to wire its
// properties. Call it from InitState, once per owner lifecycle; calling it
// again replaces the previous wiring.
//
// Example:
//
//	func (s *mainScreen) InitState() {
//	    s.StateBase.InitState()
//	    core.UseBindable(s, s.vm, func(vm *MainViewModel) {
//	        binding.MustBind(vm.Text, s.label.SetText, s.label.Text)
//	    })
//	}
//
// Once s is disposed the binding stops delivering writes; the record stays
// until another owner binds obs.
func UseBindable[O binding.Observable](s stateBase, obs O, configure func(O)) {
	base := s.state()
	binding.WithScope(obs, base, configure)
}
