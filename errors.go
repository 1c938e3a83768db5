package bbexpr

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// RecursionError reports that resolving a variable re-entered itself,
// directly or transitively, before bottoming out. Path lists the
// variable names on the resolution stack at the point the cycle was
// detected, innermost last.
type RecursionError struct {
	Path []string
}

func (e *RecursionError) Error() string {
	return errors.E("recursive reference: " + strings.Join(e.Path, " -> ")).Error()
}

// ProceduralExpansionError wraps a failure raised by the Evaluator while
// running a ProceduralSnippet on behalf of Name.
type ProceduralExpansionError struct {
	Name string
	Code string
	Err  error
}

func (e *ProceduralExpansionError) Error() string {
	return errors.E(fmt.Sprintf("%s: procedural expansion failed", e.Name), e.Err).Error()
}

func (e *ProceduralExpansionError) Unwrap() error { return e.Err }
