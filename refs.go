package bbexpr

// Refs is everything a variable's value statically refers to: other
// variable names, external commands its shell bodies invoke, and bare
// function names its procedural bodies call.
type Refs struct {
	Vars  map[string]bool
	Execs map[string]bool
	Calls map[string]bool
}

func newRefs() Refs {
	return Refs{Vars: map[string]bool{}, Execs: map[string]bool{}, Calls: map[string]bool{}}
}

// References statically collects everything name's value refers to,
// without executing any embedded code. A direct "${FOO}" reference is
// found structurally (it is always a VariableRef node, inside or
// outside a shell/procedural body); an indirect reference made only
// through embedded procedural code -- a d.getVar("FOO") call -- is found
// by handing the body's rendered source to the Engine's Procedural
// introspector, when configured. The Shell introspector contributes only
// external command names (Execs); a shell "$FOO" is not reported.
func (e *Engine) References(store Store, name string) (Refs, error) {
	node, ok := e.ValueFor(store, name)
	if !ok {
		return newRefs(), nil
	}
	return e.ReferencesOfNode(store, node), nil
}

// ReferencesOfNode is References for a node the caller already has in
// hand -- e.g. the blacklisted node a Signature records, which must be
// scanned for references in its blacklisted form rather than having its
// source name re-looked-up and re-blacklisted.
func (e *Engine) ReferencesOfNode(store Store, node Node) Refs {
	refs := newRefs()
	e.collectRefs(store, node, &refs)
	return refs
}

func (e *Engine) collectRefs(store Store, node Node, refs *Refs) {
	switch n := node.(type) {
	case *Literal:

	case *Compound:
		e.collectRefsSeq(store, n.Components, refs)

	case *LazyCompound:
		e.collectRefsSeq(store, n.Prepend, refs)
		e.collectRefsSeq(store, n.Components, refs)
		e.collectRefsSeq(store, n.Append, refs)

	case *Conditional:
		e.collectRefsSeq(store, n.Components, refs)

	case *VariableRef:
		if name := refNameOf(e, store, n); name != "" {
			refs.Vars[name] = true
		}
		e.collectRefsSeq(store, n.Components, refs)

	case *ProceduralSnippet:
		e.collectProcedural(store, n.Components, refs)

	case *ShellBlock:
		e.collectShell(store, n.Components, refs)

	case *ProceduralBlock:
		e.collectProcedural(store, n.Components, refs)
	}
}

func (e *Engine) collectRefsSeq(store Store, nodes []Node, refs *Refs) {
	for _, n := range nodes {
		e.collectRefs(store, n, refs)
	}
}

// renderLiteral resolves nodes with VariableRef dereferencing disabled,
// producing source text that still names its "${VAR}" references
// literally -- the form a shell or procedural scanner needs in order to
// parse a syntactically complete body.
func (e *Engine) renderLiteral(store Store, nodes []Node) (string, error) {
	st := &resolveState{store: store, onPath: map[string]bool{}, crossref: false}
	return e.resolveSeq(nodes, st)
}

func (e *Engine) collectShell(store Store, components []Node, refs *Refs) {
	e.collectRefsSeq(store, components, refs)
	if e.Shell == nil {
		return
	}
	text, err := e.renderLiteral(store, components)
	if err != nil {
		return
	}
	scanned, err := e.Shell.Scan(text)
	if err != nil {
		return
	}
	for _, c := range scanned.Execs {
		refs.Execs[c] = true
	}
}

func (e *Engine) collectProcedural(store Store, components []Node, refs *Refs) {
	e.collectRefsSeq(store, components, refs)
	if e.Procedural == nil {
		return
	}
	text, err := e.renderLiteral(store, components)
	if err != nil {
		return
	}
	scanned, diags, err := e.Procedural.Scan(text)
	if err != nil {
		return
	}
	for _, d := range diags {
		Debugf("", "procedural scan: %s", d.Message)
	}
	for _, v := range scanned.Vars {
		refs.Vars[v] = true
	}
	for _, c := range scanned.Calls {
		refs.Calls[c] = true
	}
}
