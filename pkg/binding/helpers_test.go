package binding

import (
	"runtime"
	"testing"

	"github.com/go-drift/bindings/pkg/platform"
)

type testModel struct {
	Bindable
	Text  *Property[string]
	Count *Property[int]
	Flag  *Property[bool]
}

func newTestModel() *testModel {
	m := &testModel{}
	m.Text = NewProperty[string](m, "text")
	m.Count = NewProperty[int](m, "count")
	m.Flag = NewProperty[bool](m, "flag")
	return m
}

type testOwner struct {
	name string
	tags []string
}

type lifecycleOwner struct {
	platform.Lifecycle
	name string
}

// recorder collects writer calls in the order they happen.
type recorder[T any] struct {
	calls []T
}

func (r *recorder[T]) write(v T) { r.calls = append(r.calls, v) }

func setupUIThread(t *testing.T) {
	t.Helper()
	platform.SetupTestUIThread(t.Cleanup)
}

// newOwner returns an owner that stays reachable until the test ends.
// The registry holds owners weakly, so an owner only referenced by a local
// variable may be collected mid-test.
func newOwner(t *testing.T, name string) *testOwner {
	o := &testOwner{name: name}
	t.Cleanup(func() { runtime.KeepAlive(o) })
	return o
}
