package bbexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kergoth/bbexpr/bbexprtest"
)

func TestResolveLiteral(t *testing.T) {
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "bar"})
	e := NewEngine(nil, nil, nil)

	out, err := e.Resolve(store, "FOO")
	require.NoError(t, err)
	assert.Equal(t, "bar", out)
}

func TestResolveVariableRef(t *testing.T) {
	store := bbexprtest.NewStore(
		bbexprtest.Var{Name: "TOPDIR", Value: "/work"},
		bbexprtest.Var{Name: "FOO", Value: "${TOPDIR}/foo"},
	)
	e := NewEngine(nil, nil, nil)

	out, err := e.Resolve(store, "FOO")
	require.NoError(t, err)
	assert.Equal(t, "/work/foo", out)
}

func TestResolveUndefinedRefDegradesToLiteral(t *testing.T) {
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "${undefinedvar} meh"})
	e := NewEngine(nil, nil, nil)

	out, err := e.Resolve(store, "FOO")
	require.NoError(t, err)
	assert.Equal(t, "${undefinedvar} meh", out)
}

func TestResolveUnboundNameIsEmpty(t *testing.T) {
	store := bbexprtest.NewStore()
	e := NewEngine(nil, nil, nil)

	out, err := e.Resolve(store, "NOPE")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestResolveDirectRecursionErrors(t *testing.T) {
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "${FOO}"})
	e := NewEngine(nil, nil, nil)

	_, err := e.Resolve(store, "FOO")
	require.Error(t, err)
	var recErr *RecursionError
	require.ErrorAs(t, err, &recErr)
}

func TestResolveTransitiveRecursionErrors(t *testing.T) {
	store := bbexprtest.NewStore(
		bbexprtest.Var{Name: "FOO", Value: "${BAR}"},
		bbexprtest.Var{Name: "BAR", Value: "${FOO}"},
	)
	e := NewEngine(nil, nil, nil)

	_, err := e.Resolve(store, "FOO")
	require.Error(t, err)
	var recErr *RecursionError
	require.ErrorAs(t, err, &recErr)
}

func TestResolveLiteralRefsDoesNotDereference(t *testing.T) {
	store := bbexprtest.NewStore(
		bbexprtest.Var{Name: "TOPDIR", Value: "/work"},
		bbexprtest.Var{Name: "FOO", Value: "${TOPDIR}/foo"},
	)
	e := NewEngine(nil, nil, nil)

	out, err := e.ResolveLiteralRefs(store, "FOO")
	require.NoError(t, err)
	assert.Equal(t, "${TOPDIR}/foo", out)
}

func TestResolveProceduralSnippetRequiresEvaluator(t *testing.T) {
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "${@1+1}"})
	e := NewEngine(nil, nil, nil)

	_, err := e.Resolve(store, "FOO")
	require.Error(t, err)
	var procErr *ProceduralExpansionError
	require.ErrorAs(t, err, &procErr)
}

func TestResolveProceduralSnippetUsesEvaluator(t *testing.T) {
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "${@bb.data.getVar('BAR')}BAR"})
	store.Set("BAR", "baz")
	evalFn := EvalFunc(func(code string, bindings Store) (string, error) {
		v, _, _ := bindings.Get("BAR")
		return v, nil
	})
	e := NewEngine(evalFn, nil, nil)

	out, err := e.Resolve(store, "FOO")
	require.NoError(t, err)
	assert.Equal(t, "bazBAR", out)
}

func TestResolveLazyCompoundOrdering(t *testing.T) {
	lc := &LazyCompound{
		Prepend:    []Node{NewLiteral("pre ")},
		Components: []Node{NewLiteral("base")},
		Append:     []Node{NewLiteral(" post")},
	}
	store := bbexprtest.NewStore()
	e := NewEngine(nil, nil, nil)
	st := &resolveState{store: store, onPath: map[string]bool{}, crossref: true}
	out, err := e.resolveNode(lc, st)
	require.NoError(t, err)
	assert.Equal(t, "pre base post", out)
}

func TestResolveConditionalFalseIsEmpty(t *testing.T) {
	cond := &Conditional{
		Condition:  func(Store) bool { return false },
		Components: []Node{NewLiteral("hidden")},
	}
	store := bbexprtest.NewStore()
	e := NewEngine(nil, nil, nil)
	st := &resolveState{store: store, onPath: map[string]bool{}, crossref: true}
	out, err := e.resolveNode(cond, st)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
