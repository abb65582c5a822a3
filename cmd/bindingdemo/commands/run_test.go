package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	if err := runDemo(context.Background(), &out, time.Millisecond, false); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		`[helloLabel] text = "Hello, World!"`,
		`[navigateButton] text = "..."`,
		`[navigateButton] text = "navigate"`,
		"(toast) toast!",
		"(toast) nested value",
		"main.text kind=string reader=true writers=1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunDemoDestroy(t *testing.T) {
	var out bytes.Buffer
	if err := runDemo(context.Background(), &out, time.Millisecond, true); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	got := out.String()
	if strings.Contains(got, `text = "after destroy"`) {
		t.Errorf("destroyed screen still received a write:\n%s", got)
	}
	if !strings.Contains(got, `helloLabel still shows "Hello, World!"`) {
		t.Errorf("expected label to keep its last value:\n%s", got)
	}
}

func TestRootCommandRun(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", "--delay", "1ms"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "say hello") {
		t.Errorf("missing step output:\n%s", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output %q missing %q", out.String(), Version)
	}
}
