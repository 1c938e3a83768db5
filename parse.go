package bbexpr

// frameKind tracks which kind of marker (if any) opened the frame
// currently being parsed, so the parser knows both what to do on a
// closing "}" and what wrapper node to build once one is found.
type frameKind int

const (
	frameTop frameKind = iota
	frameVariableRef
	frameProceduralSnippet
)

// Parse parses a raw metadata string into a value AST. For any string
// containing none of the three markers, the result is a Compound holding
// exactly one Literal equal to the input (spec invariant: parse-resolve
// identity). An opener with no matching closer degrades to a literal
// rather than producing an error -- the parser never fails.
func Parse(raw string) *Compound {
	tok := newTokenizer(raw)
	return &Compound{Components: parseFrame(tok, frameTop)}
}

// parseFrame consumes tokens until it closes the frame it was asked to
// parse (a top-level frame closes only at EOF; a VariableRef/Procedural
// frame closes on an unmatched "}"), returning the frame's components.
//
// This performs the speculative descent spec.md's parser design calls
// for: a "${" or "${@" is parsed optimistically as a nested frame, and if
// that frame never closes before EOF, the partial parse is discarded in
// favor of the opener and its components re-emitted as literal siblings
// of the parent -- preserving strings like "s:IP{:I${:g" verbatim.
func parseFrame(tok *tokenizer, kind frameKind) []Node {
	var components []Node
	for {
		cur, ok := tok.current()
		if !ok {
			break
		}
		switch cur {
		case openVar, openProc:
			childKind := frameVariableRef
			if cur == openProc {
				childKind = frameProceduralSnippet
			}
			tok.advance()
			childComponents := parseFrame(tok, childKind)
			if closeCur, closeOk := tok.current(); closeOk && closeCur == closeTok {
				components = appendCoalesced(components, wrapFrame(childKind, childComponents))
			} else {
				components = appendCoalesced(components, NewLiteral(cur))
				for _, c := range childComponents {
					components = appendCoalesced(components, c)
				}
			}
		case closeTok:
			if kind != frameTop {
				return components
			}
			components = appendCoalesced(components, NewLiteral(cur))
		default:
			components = appendCoalesced(components, NewLiteral(cur))
		}
		tok.advance()
	}
	return components
}

func wrapFrame(kind frameKind, components []Node) Node {
	if kind == frameProceduralSnippet {
		return &ProceduralSnippet{Components: components}
	}
	return &VariableRef{Components: components}
}
