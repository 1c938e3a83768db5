// Package shellscan implements bbexpr.ShellIntrospector using
// mvdan.cc/sh/v3/syntax, a real POSIX-shell-grammar parser. No example
// in the retrieved corpus parses shell source itself; this dependency
// is named explicitly here (see DESIGN.md) rather than leaning on the
// teacher's own stack, which has no shell-parsing concern at all.
package shellscan

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/kergoth/bbexpr"
)

// Scanner is the default bbexpr.ShellIntrospector.
type Scanner struct{}

// New returns a Scanner.
func New() *Scanner { return &Scanner{} }

// Scan parses source as a POSIX shell function body and returns the
// external commands it invokes, with any function it defines locally
// subtracted out -- a recipe's do_compile calling its own do_compile_prepend
// helper isn't an "external command" reference, it's an internal one.
func (s *Scanner) Scan(source string) (bbexpr.ShellRefs, error) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(source), "")
	if err != nil {
		return bbexpr.ShellRefs{}, err
	}

	execs := map[string]bool{}
	funcdefs := map[string]bool{}

	syntax.Walk(file, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.FuncDecl:
			funcdefs[n.Name.Value] = true
		case *syntax.CallExpr:
			if len(n.Args) == 0 {
				return true
			}
			name := literalWord(n.Args[0])
			if name != "" {
				execs[name] = true
			}
		}
		return true
	})

	out := make([]string, 0, len(execs))
	for name := range execs {
		if !funcdefs[name] {
			out = append(out, name)
		}
	}
	return bbexpr.ShellRefs{Execs: out}, nil
}

// literalWord returns w's text if it is a plain word with no parameter
// or command substitution, else "".
func literalWord(w *syntax.Word) string {
	if w == nil || len(w.Parts) != 1 {
		return ""
	}
	lit, ok := w.Parts[0].(*syntax.Lit)
	if !ok {
		return ""
	}
	return lit.Value
}
