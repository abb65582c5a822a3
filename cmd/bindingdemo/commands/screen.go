package commands

import (
	"fmt"
	"io"

	"github.com/go-drift/bindings/pkg/adapters"
	"github.com/go-drift/bindings/pkg/binding"
	"github.com/go-drift/bindings/pkg/core"
)

// consoleLabel is a text widget that prints every change.
type consoleLabel struct {
	id   string
	text string
	out  io.Writer
}

func (l *consoleLabel) Text() string { return l.text }

func (l *consoleLabel) SetText(text string) {
	l.text = text
	fmt.Fprintf(l.out, "  [%s] text = %q\n", l.id, text)
}

// consoleSwitch is an on/off widget that prints every change.
type consoleSwitch struct {
	id  string
	on  bool
	out io.Writer
}

func (s *consoleSwitch) Checked() bool { return s.on }

func (s *consoleSwitch) SetChecked(checked bool) {
	s.on = checked
	fmt.Fprintf(s.out, "  [%s] checked = %v\n", s.id, checked)
}

// mainScreen owns the bindings of all three view models.
type mainScreen struct {
	core.StateBase
	out            io.Writer
	vm             *mainViewModel
	extra          *extraViewModel
	helloLabel     *consoleLabel
	navigateButton *consoleLabel
	adminSwitch    *consoleSwitch
	err            error
}

func newMainScreen(out io.Writer, vm *mainViewModel, extra *extraViewModel) *mainScreen {
	return &mainScreen{
		out:            out,
		vm:             vm,
		extra:          extra,
		helloLabel:     &consoleLabel{id: "helloLabel", out: out},
		navigateButton: &consoleLabel{id: "navigateButton", out: out},
		adminSwitch:    &consoleSwitch{id: "adminSwitch", out: out},
	}
}

func (s *mainScreen) InitState() {
	s.StateBase.InitState()
	core.UseBindable(s, s.vm, func(vm *mainViewModel) {
		s.keep(adapters.BindText(vm.Text, s.helloLabel))
		s.keep(adapters.BindText(vm.ButtonText, s.navigateButton))
		s.keep(adapters.BindChecked(vm.Admin, s.adminSwitch))

		core.UseBindable(s, vm.Nested, func(nested *nestedViewModel) {
			s.keep(binding.Bind(nested.SecondaryText, s.toast, nil))
		})
	})
	s.bindExtra()
}

// Resume rebinds the one-shot message; every resume replaces the wiring.
func (s *mainScreen) Resume() {
	s.StateBase.Resume()
	s.bindExtra()
}

func (s *mainScreen) bindExtra() {
	core.UseBindable(s, s.extra, func(extra *extraViewModel) {
		s.keep(binding.Bind(extra.Message, func(msg string) {
			if msg == "" {
				return
			}
			s.toast(msg)
			s.keep(extra.Message.Set(""))
		}, nil))
	})
}

func (s *mainScreen) toast(text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(s.out, "  (toast) %s\n", text)
}

// keep records the first wiring error; binding callbacks cannot return one.
func (s *mainScreen) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}
