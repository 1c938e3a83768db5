package bbexpr

import "sync"

// memoKey identifies a memoized AST by the triple spec.md calls for:
// variable name, raw value text, and the owning store's handle. Two
// stores with identical contents but distinct handles get distinct
// cache entries, matching the Python original's object-identity keying.
type memoKey struct {
	name   string
	raw    string
	isText bool
	handle uint64
}

// Engine owns the parsed-AST memo and the pluggable evaluator and
// introspectors used to resolve procedural snippets and shell/procedural
// function blocks. An Engine is safe for concurrent use; its memo is
// private to the instance, so two Engines never share cached ASTs even
// over the same Store.
type Engine struct {
	Evaluator  Evaluator
	Shell      ShellIntrospector
	Procedural ProceduralIntrospector

	mu   sync.Mutex
	memo map[memoKey]Node
}

// NewEngine constructs an Engine. A nil Evaluator, Shell or Procedural is
// legal: ProceduralSnippet resolution and reference tracking of embedded
// code degrade to an error/empty result respectively rather than
// panicking, per spec.md's graceful-degradation design.
func NewEngine(evaluator Evaluator, shell ShellIntrospector, procedural ProceduralIntrospector) *Engine {
	return &Engine{
		Evaluator:  evaluator,
		Shell:      shell,
		Procedural: procedural,
		memo:       make(map[memoKey]Node),
	}
}

// ValueFor returns the memoized AST for name's current raw value in
// store, parsing and caching it on first access. A variable with flag
// "func" set is wrapped as a ShellBlock or, if flag "python" is also
// set, a ProceduralBlock, matching the original's shvalue/pyvalue
// helpers. An unbound name yields (nil, false).
func (e *Engine) ValueFor(store Store, name string) (Node, bool) {
	text, isText, ok := store.Get(name)
	if !ok {
		return nil, false
	}

	key := memoKey{name: name, raw: text, isText: isText, handle: store.Handle()}

	e.mu.Lock()
	defer e.mu.Unlock()
	if node, ok := e.memo[key]; ok {
		return node, true
	}

	node := e.build(store, name, text, isText)
	e.memo[key] = node
	return node, true
}

func (e *Engine) build(store Store, name, text string, isText bool) Node {
	if !isText {
		return &Compound{Components: []Node{NewLiteral(text)}}
	}

	components := Parse(text).Components

	if !FlagBool(store, name, "func") {
		return &Compound{Components: components}
	}
	if FlagBool(store, name, "python") {
		return &ProceduralBlock{Components: components}
	}
	return &ShellBlock{Components: components}
}

// ParseShell wraps raw text directly as a ShellBlock, bypassing any
// named-variable lookup or flag check -- the Go equivalent of the
// original's shvalue(data) helper, for callers holding a shell command
// string that was never bound to a store key.
func (e *Engine) ParseShell(text string) Node {
	return &ShellBlock{Components: Parse(text).Components}
}

// ParseProcedural wraps raw text directly as a ProceduralBlock, the
// procedural-language counterpart to ParseShell, mirroring the
// original's pyvalue(data) helper.
func (e *Engine) ParseProcedural(text string) Node {
	return &ProceduralBlock{Components: Parse(text).Components}
}

// Forget drops every memo entry for a given store handle, e.g. after the
// host mutates the store in place and wants stale ASTs evicted rather
// than waiting for them to be naturally superseded by a new raw value.
func (e *Engine) Forget(handle uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k := range e.memo {
		if k.handle == handle {
			delete(e.memo, k)
		}
	}
}
