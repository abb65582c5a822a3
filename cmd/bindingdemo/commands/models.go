package commands

import (
	"time"

	"github.com/go-drift/bindings/pkg/binding"
	"github.com/go-drift/bindings/pkg/platform"
)

// mainViewModel backs the main screen.
type mainViewModel struct {
	binding.Bindable
	Text       *binding.Property[string]
	ButtonText *binding.Property[string]
	Admin      *binding.Property[bool]
	Nested     *nestedViewModel
}

func newMainViewModel() *mainViewModel {
	vm := &mainViewModel{Nested: newNestedViewModel()}
	vm.Text = binding.NewProperty[string](vm, "text")
	vm.ButtonText = binding.NewPropertyWith(vm, "buttonText", "...")
	vm.Admin = binding.NewProperty[bool](vm, "admin")
	return vm
}

func (vm *mainViewModel) sayHello() error {
	if vm.Text.Get() == "" {
		return vm.Text.Set("Hello, World!")
	}
	return nil
}

// onBindClick relabels the button after delay. The mutation runs on the
// looper, like any other UI update.
func (vm *mainViewModel) onBindClick(looper *platform.Looper, delay time.Duration, done func(error)) {
	looper.PostDelayed(func() {
		done(vm.ButtonText.Set("navigate"))
	}, delay)
}

func (vm *mainViewModel) assignNested() error {
	return vm.Nested.SecondaryText.Set("nested value " + time.Now().Format(time.Kitchen))
}

type nestedViewModel struct {
	binding.Bindable
	SecondaryText *binding.Property[string]
}

func newNestedViewModel() *nestedViewModel {
	vm := &nestedViewModel{}
	vm.SecondaryText = binding.NewProperty[string](vm, "secondaryText")
	return vm
}

// extraViewModel carries one-shot messages shown as toasts.
type extraViewModel struct {
	binding.Bindable
	Message *binding.Property[string]
}

func newExtraViewModel() *extraViewModel {
	vm := &extraViewModel{}
	vm.Message = binding.NewProperty[string](vm, "message")
	return vm
}
