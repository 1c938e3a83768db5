// Package bbexpr implements a BitBake-style metadata expression engine: a
// recursive-descent parser for variable values that embed variable
// references and inline shell/procedural snippets, a resolver with cycle
// detection, and a deterministic content-signature builder suitable for
// incremental-build cache keys.
//
// The engine never executes shell code and never mutates the metadata
// store it is handed. Reference tracking (package reftrack) and signature
// building do not stop on a per-variable failure: a shell or procedural
// body that the configured introspector cannot parse contributes no
// execs, calls or scanned names, and the walk goes on. Such a failure is
// not logged, and the variable stays in the signature's data.
package bbexpr
