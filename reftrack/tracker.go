// Package reftrack provides the porcelain reference-tracking API built
// on top of bbexpr.Engine.References: the set of variables, external
// commands and function calls a variable's value reaches, for use by a
// host building a recipe dependency graph (as opposed to bbexpr's own
// internal use of the same walk when building a Signature).
package reftrack

import "github.com/kergoth/bbexpr"

// Result is the outcome of tracking a single variable's references.
type Result struct {
	Vars  []string
	Execs []string
	Calls []string
}

// Tracker wraps an Engine to give reference tracking its own entry
// point, independent of signature building.
type Tracker struct {
	Engine *bbexpr.Engine
}

// New returns a Tracker backed by engine.
func New(engine *bbexpr.Engine) *Tracker {
	return &Tracker{Engine: engine}
}

// References returns everything name's value statically refers to.
func (t *Tracker) References(store bbexpr.Store, name string) (Result, error) {
	refs, err := t.Engine.References(store, name)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Vars:  keys(refs.Vars),
		Execs: keys(refs.Execs),
		Calls: keys(refs.Calls),
	}, nil
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
