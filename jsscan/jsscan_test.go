package jsscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kergoth/bbexpr/bbexprtest"
	"github.com/kergoth/bbexpr/jsscan"
)

func TestEvalReturnsLastExpression(t *testing.T) {
	e := jsscan.New()
	store := bbexprtest.NewStore(bbexprtest.Var{Name: "FOO", Value: "bar"})

	out, err := e.Eval(`d.getVar("FOO")`, store)
	require.NoError(t, err)
	assert.Equal(t, "bar", out)
}

func TestIntrospectorFindsGetVar(t *testing.T) {
	s := jsscan.NewIntrospector()
	refs, diags, err := s.Scan(`d.getVar("FOO"); bb.build.exec_func("do_compile");`)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Contains(t, refs.Vars, "FOO")
	assert.Contains(t, refs.Vars, "do_compile")
	assert.NotContains(t, refs.Calls, "do_compile")
}

func TestIntrospectorDiagnosesNonLiteral(t *testing.T) {
	s := jsscan.NewIntrospector()
	_, diags, err := s.Scan(`var name = "FOO"; d.getVar(name);`)
	require.NoError(t, err)
	require.NotEmpty(t, diags)
}

func TestIntrospectorExpandParsesArgumentAsMetadata(t *testing.T) {
	s := jsscan.NewIntrospector()
	refs, diags, err := s.Scan(`d.expand("${FOO}/bar");`)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Contains(t, refs.Vars, "FOO")
	assert.NotContains(t, refs.Vars, "${FOO}/bar")
}

func TestIntrospectorBareCallContributesToCalls(t *testing.T) {
	s := jsscan.NewIntrospector()
	refs, diags, err := s.Scan(`helper();`)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Contains(t, refs.Calls, "helper")
}
