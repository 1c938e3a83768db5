// Package jsscan supplies bbexpr's procedural-language bindings via
// goja: an Evaluator that runs a ProceduralSnippet/ProceduralBlock body
// as JavaScript, and a ProceduralIntrospector that statically recognizes
// the qualified getVar/expand/exec_func/exec_task call forms without
// running anything. goja is grounded directly on the retrieved
// grafana-k6 example repo, the pack's only embedder of a scripting
// engine.
package jsscan

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"

	"github.com/kergoth/bbexpr"
)

// getVarNames are the call forms whose literal argument is a metadata
// variable name, contributed to Vars as-is.
var getVarNames = map[string]bool{
	"d.getVar":       true,
	"bb.data.getVar": true,
	"data.getVar":    true,
}

// expandNames are the call forms whose literal argument is itself a
// metadata expression: the argument is parsed and its own references
// are unioned into Vars, rather than the literal text itself.
var expandNames = map[string]bool{
	"d.expand":       true,
	"bb.data.expand": true,
	"data.expand":    true,
}

// funcCalls name another metadata variable to run, not an external
// command, so their literal argument contributes to Vars, not Calls.
var funcCalls = map[string]bool{
	"bb.build.exec_func": true,
	"bb.build.exec_task": true,
}

// Evaluator is the default bbexpr.Evaluator, running snippet bodies as
// JavaScript in a fresh goja.Runtime per call. A fresh runtime means
// there is no script-to-script state leakage between unrelated
// variables' snippets, at the cost of re-setting up the "d" binding
// each time -- the right tradeoff for a static-analysis-friendly engine
// over a long-lived interpreter.
type Evaluator struct{}

// New returns an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Eval implements bbexpr.Evaluator.
func (e *Evaluator) Eval(code string, bindings bbexpr.Store) (string, error) {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.UncapFieldNameMapper())

	if err := bindDataObject(vm, bindings); err != nil {
		return "", err
	}

	val, err := vm.RunString(code)
	if err != nil {
		return "", err
	}
	if goja.IsUndefined(val) || goja.IsNull(val) {
		return "", nil
	}
	return val.String(), nil
}

// bindDataObject exposes bindings under the name "d", with getVar/expand
// methods and lazy per-key accessor properties so a snippet can read
// "d.SOMEVAR" directly as well as call "d.getVar('SOMEVAR')".
func bindDataObject(vm *goja.Runtime, store bbexpr.Store) error {
	d := vm.NewObject()

	getVar := func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		text, _, ok := store.Get(name)
		if !ok {
			return goja.Undefined()
		}
		return vm.ToValue(text)
	}
	if err := d.Set("getVar", getVar); err != nil {
		return err
	}
	if err := d.Set("expand", getVar); err != nil {
		return err
	}

	for _, name := range store.Keys() {
		name := name
		_ = d.DefineAccessorProperty(name, vm.ToValue(func(goja.FunctionCall) goja.Value {
			text, _, _ := store.Get(name)
			return vm.ToValue(text)
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	}

	return vm.Set("d", d)
}

// Introspector is the default bbexpr.ProceduralIntrospector.
type Introspector struct{}

// NewIntrospector returns an Introspector.
func NewIntrospector() *Introspector { return &Introspector{} }

// Scan parses source as JavaScript and walks it for the recognized
// getVar/expand/exec_func/exec_task call forms, never running any of it.
func (s *Introspector) Scan(source string) (bbexpr.ProceduralRefs, []bbexpr.Diagnostic, error) {
	prog, err := parser.ParseFile(nil, "", source, 0)
	if err != nil {
		return bbexpr.ProceduralRefs{}, nil, err
	}

	refs := bbexpr.ProceduralRefs{}
	var diags []bbexpr.Diagnostic

	var walkExpr func(ast.Expression)
	var walkStmt func(ast.Statement)

	visitCall := func(call *ast.CallExpression) {
		qualified := qualifiedName(call.Callee)
		if qualified == "" {
			return
		}
		switch {
		case getVarNames[qualified]:
			lit, ok := literalArg(call)
			if !ok {
				diags = append(diags, bbexpr.Diagnostic{
					Message: fmt.Sprintf("%s called with non-literal argument", qualified),
					Pos:     int(call.Idx0()),
				})
				return
			}
			refs.Vars = append(refs.Vars, lit)
		case expandNames[qualified]:
			lit, ok := literalArg(call)
			if !ok {
				diags = append(diags, bbexpr.Diagnostic{
					Message: fmt.Sprintf("%s called with non-literal argument", qualified),
					Pos:     int(call.Idx0()),
				})
				return
			}
			refs.Vars = append(refs.Vars, parseRefs(lit)...)
		case funcCalls[qualified]:
			lit, ok := literalArg(call)
			if !ok {
				diags = append(diags, bbexpr.Diagnostic{
					Message: fmt.Sprintf("%s called with non-literal argument", qualified),
					Pos:     int(call.Idx0()),
				})
				return
			}
			refs.Vars = append(refs.Vars, lit)
		default:
			if name, ok := call.Callee.(*ast.Identifier); ok {
				refs.Calls = append(refs.Calls, name.Name.String())
			}
		}
	}

	walkExpr = func(e ast.Expression) {
		switch n := e.(type) {
		case nil:
		case *ast.CallExpression:
			visitCall(n)
			walkExpr(n.Callee)
			for _, a := range n.ArgumentList {
				walkExpr(a)
			}
		case *ast.DotExpression:
			walkExpr(n.Left)
		case *ast.BinaryExpression:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.AssignExpression:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.ConditionalExpression:
			walkExpr(n.Test)
			walkExpr(n.Consequent)
			walkExpr(n.Alternate)
		case *ast.SequenceExpression:
			for _, x := range n.Sequence {
				walkExpr(x)
			}
		}
	}

	walkStmt = func(st ast.Statement) {
		switch n := st.(type) {
		case nil:
		case *ast.ExpressionStatement:
			walkExpr(n.Expression)
		case *ast.VariableStatement:
			for _, decl := range n.List {
				if vd, ok := decl.(*ast.VariableExpression); ok {
					walkExpr(vd.Initializer)
				}
			}
		case *ast.BlockStatement:
			for _, s2 := range n.List {
				walkStmt(s2)
			}
		case *ast.IfStatement:
			walkExpr(n.Test)
			walkStmt(n.Consequent)
			walkStmt(n.Alternate)
		case *ast.ReturnStatement:
			walkExpr(n.Argument)
		case *ast.ForStatement:
			walkStmt(n.Body)
		case *ast.WhileStatement:
			walkExpr(n.Test)
			walkStmt(n.Body)
		}
	}

	for _, st := range prog.Body {
		walkStmt(st)
	}

	return refs, diags, nil
}

// literalArg returns call's first argument as a string, if present and a
// literal.
func literalArg(call *ast.CallExpression) (string, bool) {
	if len(call.ArgumentList) == 0 {
		return "", false
	}
	lit, ok := call.ArgumentList[0].(*ast.StringLiteral)
	if !ok {
		return "", false
	}
	return lit.Value, true
}

// parseRefs parses s as a metadata expression and returns the names of
// every VariableRef it directly contains, skipping references whose own
// name isn't statically known (e.g. it contains a nested reference or
// procedural snippet).
func parseRefs(s string) []string {
	var names []string
	var walk func(n bbexpr.Node)
	walk = func(n bbexpr.Node) {
		switch v := n.(type) {
		case *bbexpr.Compound:
			for _, c := range v.Components {
				walk(c)
			}
		case *bbexpr.VariableRef:
			if name, ok := literalText(v.Components); ok {
				names = append(names, name)
			}
		}
	}
	walk(bbexpr.Parse(s))
	return names
}

// literalText concatenates nodes as literal text, succeeding only if
// every node is a Literal.
func literalText(nodes []bbexpr.Node) (string, bool) {
	var b strings.Builder
	for _, n := range nodes {
		lit, ok := n.(*bbexpr.Literal)
		if !ok {
			return "", false
		}
		b.WriteString(lit.Value)
	}
	return b.String(), true
}

// qualifiedName renders a dotted call target like "bb.build.exec_func"
// from its expression tree, or "" if the callee isn't a plain chain of
// identifiers and dot accesses.
func qualifiedName(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Name.String()
	case *ast.DotExpression:
		left := qualifiedName(n.Left)
		if left == "" {
			return ""
		}
		return left + "." + n.Identifier.Name.String()
	default:
		return ""
	}
}
