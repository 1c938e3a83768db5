package reftrack

import (
	"path"
	"strings"

	"github.com/kergoth/bbexpr"
)

// FromNameOptions selects which of name's optional auxiliary reference
// rules ReferencesFromName applies, mirroring the original
// implementation's referencesFromName(metadata, name, dirs, varrefs)
// boolean parameters.
type FromNameOptions struct {
	// Dirs parses name's own "dirs" flag value (if set) as a metadata
	// expression and unions whatever it references into the result.
	Dirs bool

	// VarRefs parses name's own "varrefs" flag value (if set), splits it
	// on whitespace into glob patterns, and unions every store key
	// matching any pattern into the result.
	VarRefs bool
}

// ReferencesFromName is References with §4.5.3's auxiliary lookups
// layered on top:
//
//  1. If opts.Dirs and name's "dirs" flag is set, that flag's value is
//     itself parsed as a metadata expression and its references unioned
//     in.
//  2. If opts.VarRefs and name's "varrefs" flag is set, that flag's
//     value is whitespace-split into glob patterns, and every store key
//     matching any pattern is unioned in.
//  3. Every store name with its "export" flag set is always unioned in,
//     since an exported variable's value reaches every task's shell
//     environment regardless of whether name's value names it directly.
//  4. Every name in name's own Execs that is itself a func-flagged,
//     non-python variable is always unioned in as a Var -- calling that
//     shell command really means invoking another shell-function
//     variable.
func (t *Tracker) ReferencesFromName(store bbexpr.Store, name string, opts FromNameOptions) (Result, error) {
	result, err := t.References(store, name)
	if err != nil {
		return Result{}, err
	}

	varSet := make(map[string]bool, len(result.Vars))
	for _, v := range result.Vars {
		varSet[v] = true
	}

	if opts.Dirs {
		if flagValue, ok := store.GetFlag(name, "dirs"); ok {
			node := bbexpr.Parse(flagValue)
			refs := t.Engine.ReferencesOfNode(store, node)
			for v := range refs.Vars {
				varSet[v] = true
			}
		}
	}

	if opts.VarRefs {
		if flagValue, ok := store.GetFlag(name, "varrefs"); ok {
			for _, pattern := range strings.Fields(flagValue) {
				for _, key := range store.Keys() {
					if ok, err := path.Match(pattern, key); err == nil && ok {
						varSet[key] = true
					}
				}
			}
		}
	}

	for _, key := range store.Keys() {
		if bbexpr.FlagBool(store, key, "export") {
			varSet[key] = true
		}
	}

	for _, execName := range result.Execs {
		if bbexpr.FlagBool(store, execName, "func") && !bbexpr.FlagBool(store, execName, "python") {
			varSet[execName] = true
		}
	}

	result.Vars = make([]string, 0, len(varSet))
	for v := range varSet {
		result.Vars = append(result.Vars, v)
	}
	return result, nil
}
