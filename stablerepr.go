package bbexpr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StableRepr renders node as a canonical, order-independent text form
// suitable as digest input: structurally identical ASTs always produce
// byte-identical repr text, regardless of construction order. This
// mirrors the original implementation's stable_repr, extended with a
// case per bbexpr.Node kind the Python source didn't have.
func StableRepr(node Node) string {
	var b strings.Builder
	writeRepr(&b, node)
	return b.String()
}

func writeRepr(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("None")

	case *Literal:
		b.WriteString("Literal(")
		b.WriteString(strconv.Quote(n.Value))
		b.WriteString(")")

	case *Compound:
		b.WriteString("Compound(")
		writeReprSeq(b, n.Components)
		b.WriteString(")")

	case *VariableRef:
		b.WriteString("VariableRef(")
		writeReprSeq(b, n.Components)
		b.WriteString(")")

	case *ProceduralSnippet:
		b.WriteString("ProceduralSnippet(")
		writeReprSeq(b, n.Components)
		b.WriteString(")")

	case *ShellBlock:
		b.WriteString("ShellBlock(")
		writeReprSeq(b, n.Components)
		b.WriteString(")")

	case *ProceduralBlock:
		b.WriteString("ProceduralBlock(")
		writeReprSeq(b, n.Components)
		b.WriteString(")")

	case *LazyCompound:
		b.WriteString("LazyCompound(prepend=")
		writeReprSeq(b, n.Prepend)
		b.WriteString(", components=")
		writeReprSeq(b, n.Components)
		b.WriteString(", append=")
		writeReprSeq(b, n.Append)
		b.WriteString(")")

	case *Conditional:
		b.WriteString("Conditional(")
		writeReprSeq(b, n.Components)
		b.WriteString(")")

	default:
		fmt.Fprintf(b, "Unknown(%T)", n)
	}
}

func writeReprSeq(b *strings.Builder, nodes []Node) {
	b.WriteString("[")
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRepr(b, n)
	}
	b.WriteString("]")
}

// stableMapRepr renders a string-keyed map of node reprs in sorted-key
// order, as "{k1: v1, k2: v2, ...}" mapping syntax -- the canonical form
// for a Mapping, distinct from stableSetRepr's Set(...) form. Signature
// data is a mapping (variable name -> its blacklisted AST), not a set,
// matching the original implementation's stable_repr dict case.
func stableMapRepr(data map[string]Node) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		writeRepr(&b, data[k])
	}
	b.WriteString("}")
	return b.String()
}

// stableSetRepr renders a set of strings in sorted order as "Set(...)"
// syntax, the canonical form for an unordered collection such as a
// reference set.
func stableSetRepr(items map[string]bool) string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Set(")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
	}
	b.WriteString(")")
	return b.String()
}
