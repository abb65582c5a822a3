package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/bindings/pkg/binding"
	"github.com/go-drift/bindings/pkg/platform"
)

func runCmd() *cobra.Command {
	var (
		delay   time.Duration
		destroy bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo screen on a UI looper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout(), delay, destroy)
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 200*time.Millisecond, "delay before the button text changes")
	cmd.Flags().BoolVar(&destroy, "destroy", false, "destroy the screen and show that bound widgets stop updating")
	return cmd
}

func runDemo(ctx context.Context, out io.Writer, delay time.Duration, destroy bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	looper := platform.NewLooper()
	loopDone := make(chan error, 1)
	go func() { loopDone <- looper.Run(ctx) }()

	vm := newMainViewModel()
	extra := newExtraViewModel()
	screen := newMainScreen(out, vm, extra)

	step := func(name string, fn func() error) error {
		fmt.Fprintf(out, "%s\n", name)
		var stepErr error
		if err := looper.Invoke(ctx, func() { stepErr = fn() }); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if stepErr != nil {
			return fmt.Errorf("%s: %w", name, stepErr)
		}
		return nil
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"init screen", func() error { screen.InitState(); return screen.err }},
		{"say hello", vm.sayHello},
		{"bindings", func() error { printBindings(out, map[string]binding.Observable{"main": vm, "nested": vm.Nested, "extra": extra}); return nil }},
		{"show toast", func() error { return extra.Message.Set("toast!") }},
		{"pause and resume", func() error { screen.Pause(); screen.Resume(); return screen.err }},
	}
	for _, s := range steps {
		if err := step(s.name, s.fn); err != nil {
			return err
		}
	}

	clicked := make(chan error, 1)
	if err := step("bind click", func() error {
		vm.onBindClick(looper, delay, func(err error) { clicked <- err })
		return nil
	}); err != nil {
		return err
	}
	select {
	case err := <-clicked:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := step("assign nested", vm.assignNested); err != nil {
		return err
	}

	if destroy {
		if err := step("destroy screen", func() error {
			screen.Dispose()
			if err := vm.Text.Set("after destroy"); err != nil {
				return err
			}
			fmt.Fprintf(out, "  helloLabel still shows %q\n", screen.helloLabel.Text())
			return nil
		}); err != nil {
			return err
		}
	}

	// The screen owns every binding above; keep it reachable until the
	// loop stops so its records are not evicted mid-run.
	runtime.KeepAlive(screen)
	cancel()
	if err := <-loopDone; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printBindings(out io.Writer, observables map[string]binding.Observable) {
	names := make([]string, 0, len(observables))
	for name := range observables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, b := range binding.Describe(observables[name]) {
			fmt.Fprintf(out, "  %s.%s kind=%s reader=%v writers=%d\n", name, b.Name, b.Kind, b.HasReader, b.Writers)
		}
	}
}
