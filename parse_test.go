package bbexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	c := Parse("foo bar baz")
	require.Len(t, c.Components, 1)
	lit, ok := c.Components[0].(*Literal)
	require.True(t, ok)
	assert.Equal(t, "foo bar baz", lit.Value)
}

func TestParseVariableRef(t *testing.T) {
	c := Parse("foo ${BAR} baz")
	require.Len(t, c.Components, 3)

	assert.Equal(t, "foo ", c.Components[0].(*Literal).Value)

	ref, ok := c.Components[1].(*VariableRef)
	require.True(t, ok)
	require.Len(t, ref.Components, 1)
	assert.Equal(t, "BAR", ref.Components[0].(*Literal).Value)

	assert.Equal(t, " baz", c.Components[2].(*Literal).Value)
}

func TestParseProceduralSnippet(t *testing.T) {
	c := Parse("${@1 + 1}")
	require.Len(t, c.Components, 1)
	snip, ok := c.Components[0].(*ProceduralSnippet)
	require.True(t, ok)
	require.Len(t, snip.Components, 1)
	assert.Equal(t, "1 + 1", snip.Components[0].(*Literal).Value)
}

func TestParseNestedVariableRef(t *testing.T) {
	c := Parse("${${FOO}}")
	require.Len(t, c.Components, 1)
	outer, ok := c.Components[0].(*VariableRef)
	require.True(t, ok)
	require.Len(t, outer.Components, 1)
	inner, ok := outer.Components[0].(*VariableRef)
	require.True(t, ok)
	assert.Equal(t, "FOO", inner.Components[0].(*Literal).Value)
}

func TestParseUnclosedOpenerRecovers(t *testing.T) {
	c := Parse("s:IP{:I${:g")
	var b []byte
	for _, n := range c.Components {
		lit, ok := n.(*Literal)
		require.True(t, ok, "expected every component to degrade to a literal, got %T", n)
		b = append(b, lit.Value...)
	}
	assert.Equal(t, "s:IP{:I${:g", string(b))
}

func TestParseUnclosedProceduralRecovers(t *testing.T) {
	c := Parse("${@foo(")
	var b []byte
	for _, n := range c.Components {
		lit, ok := n.(*Literal)
		require.True(t, ok, "expected every component to degrade to a literal, got %T", n)
		b = append(b, lit.Value...)
	}
	assert.Equal(t, "${@foo(", string(b))
}

func TestParseAdjacentLiteralsCoalesce(t *testing.T) {
	c := Parse("a${FOO}b${BAR}c")
	// "a", ref, "b", ref, "c" -- no adjacent literals to coalesce here,
	// but two top-level closing braces with no opener each become a
	// literal "}" and must coalesce into one node.
	unclosed := Parse("}}")
	require.Len(t, unclosed.Components, 1)
	assert.Equal(t, "}}", unclosed.Components[0].(*Literal).Value)
	_ = c
}

func TestParseEmptyString(t *testing.T) {
	c := Parse("")
	assert.Empty(t, c.Components)
}
