package bbexpr

import (
	"errors"
	"strings"
)

var errNoEvaluator = errors.New("no Evaluator configured for procedural snippets")

// resolveState threads a single Resolve call's context through the
// recursive node walk: the path of variable names currently being
// resolved (for cycle detection) and whether VariableRef should
// dereference (crossref) or emit its literal "${name}" form.
type resolveState struct {
	store    Store
	path     []string
	onPath   map[string]bool
	crossref bool
}

// Resolve fully expands name's value: every VariableRef is dereferenced,
// every ProceduralSnippet is evaluated, and ShellBlock/ProceduralBlock
// bodies have their own embedded references expanded in place. A name
// unbound in store resolves to "" with no error, matching BitBake's
// "undefined expands empty" convention; a cycle returns a
// *RecursionError instead of looping forever.
func (e *Engine) Resolve(store Store, name string) (string, error) {
	return e.resolveName(store, name, &resolveState{
		store:    store,
		onPath:   map[string]bool{},
		crossref: true,
	})
}

// ResolveLiteralRefs is Resolve's crossref=false counterpart: a
// VariableRef is emitted as the literal text "${name}" rather than
// dereferenced, matching traverse.Resolver(metadata, crossref=False) in
// the original implementation.
func (e *Engine) ResolveLiteralRefs(store Store, name string) (string, error) {
	return e.resolveName(store, name, &resolveState{
		store:  store,
		onPath: map[string]bool{},
	})
}

func (e *Engine) resolveName(store Store, name string, st *resolveState) (string, error) {
	node, ok := e.ValueFor(store, name)
	if !ok {
		return "", nil
	}
	if st.onPath[name] {
		path := append(append([]string{}, st.path...), name)
		return "", &RecursionError{Path: path}
	}
	st.onPath[name] = true
	st.path = append(st.path, name)
	defer func() {
		delete(st.onPath, name)
		st.path = st.path[:len(st.path)-1]
	}()

	return e.resolveNode(node, st)
}

func (e *Engine) resolveNode(node Node, st *resolveState) (string, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Value, nil

	case *Compound:
		return e.resolveSeq(n.Components, st)

	case *ShellBlock:
		return e.resolveSeq(n.Components, st)

	case *ProceduralBlock:
		return e.resolveSeq(n.Components, st)

	case *LazyCompound:
		var b strings.Builder
		for _, seq := range [][]Node{n.Prepend, n.Components, n.Append} {
			s, err := e.resolveSeq(seq, st)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		return b.String(), nil

	case *Conditional:
		if n.Condition != nil && !n.Condition(st.store) {
			return "", nil
		}
		return e.resolveSeq(n.Components, st)

	case *VariableRef:
		refName, err := e.resolveSeq(n.Components, st)
		if err != nil {
			return "", err
		}
		if !st.crossref {
			return "${" + refName + "}", nil
		}
		if _, ok := e.ValueFor(st.store, refName); !ok {
			// Absent from the store: the reference degrades to its own
			// literal text rather than vanishing, per the original's
			// visit_VariableRef "if value is None: return ${name}".
			return "${" + refName + "}", nil
		}
		return e.resolveName(st.store, refName, st)

	case *ProceduralSnippet:
		code, err := e.resolveSeq(n.Components, st)
		if err != nil {
			return "", err
		}
		if e.Evaluator == nil {
			return "", &ProceduralExpansionError{Name: st.currentName(), Code: code, Err: errNoEvaluator}
		}
		out, err := e.Evaluator.Eval(code, st.store)
		if err != nil {
			return "", &ProceduralExpansionError{Name: st.currentName(), Code: code, Err: err}
		}
		return out, nil

	default:
		return "", nil
	}
}

func (st *resolveState) currentName() string {
	if len(st.path) == 0 {
		return ""
	}
	return st.path[len(st.path)-1]
}

func (e *Engine) resolveSeq(nodes []Node, st *resolveState) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		s, err := e.resolveNode(n, st)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
