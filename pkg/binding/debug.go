package binding

import "sort"

// PropertyBinding describes what is wired to one property.
type PropertyBinding struct {
	Name      string
	Kind      Kind
	HasReader bool
	Writers   int
}

// Describe lists the bound properties of obs, sorted by name. It reports the
// raw record, whatever its owner's state, and is meant for debugging only.
func Describe(obs Observable) []PropertyBinding {
	ensureUIThread("binding.Describe", "")
	h := obs.bindable().handle()
	rec := bindings.get(h)
	if rec == nil {
		return nil
	}
	out := make([]PropertyBinding, 0, len(rec.props))
	for _, acc := range rec.props {
		out = append(out, acc.describe())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DebugBindings logs the bindings of obs at debug level.
func DebugBindings(obs Observable) {
	described := Describe(obs)
	h := obs.bindable().handle()
	for _, pb := range described {
		log().Debug("bindings for property",
			"observable", h,
			"property", pb.Name,
			"kind", pb.Kind.String(),
			"reader", pb.HasReader,
			"writers", pb.Writers,
		)
	}
}
