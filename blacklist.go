package bbexpr

import "path"

// matchesDenyList reports whether name is covered by patterns, either by
// an exact key match or as a glob (fnmatch-style) pattern -- the form
// BB_HASH_BLACKLIST values take in the original implementation.
func matchesDenyList(patterns map[string]bool, name string) bool {
	if patterns[name] {
		return true
	}
	for pattern := range patterns {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Blacklist replaces every VariableRef in node whose target name matches
// one of the deny-listed names with a Literal holding that ref's
// "${name}" text, so the name still appears in the signature but its
// referent's content never does. tainted reports whether any
// replacement occurred anywhere in node; a node that contains no
// blacklisted reference is returned unchanged (structural sharing), so
// callers can use pointer equality to skip re-signing unaffected values.
//
// The ref's target name is computed by resolving only its components:
// nested refs like "${${FOO}}" resolve through the store to find the
// name text, but the outer ref itself is never dereferenced to its value.
func (e *Engine) Blacklist(store Store, node Node, denied map[string]bool) (Node, bool) {
	if len(denied) == 0 {
		return node, false
	}
	return e.blacklistNode(store, node, denied)
}

func (e *Engine) blacklistNode(store Store, node Node, denied map[string]bool) (Node, bool) {
	switch n := node.(type) {
	case *Literal:
		return n, false

	case *Compound:
		children, changed := e.blacklistSeq(store, n.Components, denied)
		if !changed {
			return n, false
		}
		return &Compound{Components: children}, true

	case *ShellBlock:
		children, changed := e.blacklistSeq(store, n.Components, denied)
		if !changed {
			return n, false
		}
		return &ShellBlock{Components: children}, true

	case *ProceduralBlock:
		children, changed := e.blacklistSeq(store, n.Components, denied)
		if !changed {
			return n, false
		}
		return &ProceduralBlock{Components: children}, true

	case *ProceduralSnippet:
		children, changed := e.blacklistSeq(store, n.Components, denied)
		if !changed {
			return n, false
		}
		return &ProceduralSnippet{Components: children}, true

	case *LazyCompound:
		prepend, c1 := e.blacklistSeq(store, n.Prepend, denied)
		components, c2 := e.blacklistSeq(store, n.Components, denied)
		appendSeq, c3 := e.blacklistSeq(store, n.Append, denied)
		if !c1 && !c2 && !c3 {
			return n, false
		}
		return &LazyCompound{Prepend: prepend, Components: components, Append: appendSeq}, true

	case *Conditional:
		children, changed := e.blacklistSeq(store, n.Components, denied)
		if !changed {
			return n, false
		}
		return &Conditional{Condition: n.Condition, Components: children}, true

	case *VariableRef:
		name := refNameOf(e, store, n)
		if matchesDenyList(denied, name) {
			return NewLiteral("${" + name + "}"), true
		}
		children, changed := e.blacklistSeq(store, n.Components, denied)
		if !changed {
			return n, false
		}
		return &VariableRef{Components: children}, true

	default:
		return node, false
	}
}

// refNameOf resolves a VariableRef's components (not the ref itself) to
// the literal name text it targets, with crossref enabled for those
// components so a nested reference inside the name resolves through the
// store without the outer reference being dereferenced.
func refNameOf(e *Engine, store Store, ref *VariableRef) string {
	st := &resolveState{store: store, onPath: map[string]bool{}, crossref: true}
	name, err := e.resolveSeq(ref.Components, st)
	if err != nil {
		return ""
	}
	return name
}

func (e *Engine) blacklistSeq(store Store, nodes []Node, denied map[string]bool) ([]Node, bool) {
	out := make([]Node, len(nodes))
	changed := false
	for i, n := range nodes {
		newNode, ch := e.blacklistNode(store, n, denied)
		out[i] = newNode
		if ch {
			changed = true
		}
	}
	if !changed {
		return nodes, false
	}
	return out, true
}
