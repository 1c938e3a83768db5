package bbexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kergoth/bbexpr/bbexprtest"
)

func TestBlacklistReplacesDeniedRef(t *testing.T) {
	store := bbexprtest.NewStore(
		bbexprtest.Var{Name: "TOPDIR", Value: "/work"},
		bbexprtest.Var{Name: "FOO", Value: "${TOPDIR}/foo"},
	)
	e := NewEngine(nil, nil, nil)

	node, ok := e.ValueFor(store, "FOO")
	require.True(t, ok)

	blacklisted, tainted := e.Blacklist(store, node, map[string]bool{"TOPDIR": true})
	require.True(t, tainted)

	comp := blacklisted.(*Compound)
	require.Len(t, comp.Components, 2)
	assert.Equal(t, "${TOPDIR}", comp.Components[0].(*Literal).Value)
	assert.Equal(t, "/foo", comp.Components[1].(*Literal).Value)
}

func TestBlacklistUntouchedReturnsOriginal(t *testing.T) {
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "${BAR}"})
	e := NewEngine(nil, nil, nil)

	node, ok := e.ValueFor(store, "FOO")
	require.True(t, ok)

	blacklisted, tainted := e.Blacklist(store, node, map[string]bool{"OTHER": true})
	require.False(t, tainted)
	assert.Same(t, node, blacklisted)
}

func TestBlacklistEmptyDenyListIsNoop(t *testing.T) {
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "${BAR}"})
	e := NewEngine(nil, nil, nil)

	node, ok := e.ValueFor(store, "FOO")
	require.True(t, ok)

	blacklisted, tainted := e.Blacklist(store, node, nil)
	require.False(t, tainted)
	assert.Same(t, node, blacklisted)
}
