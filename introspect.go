package bbexpr

// ShellRefs is the result of statically scanning a shell function body:
// the external commands it invokes, with any commands it defines itself
// (shell functions called only internally) subtracted out.
type ShellRefs struct {
	Execs []string
}

// ShellIntrospector statically scans shell source without executing it.
// Package shellscan supplies the default implementation, grounded on
// mvdan.cc/sh/v3/syntax.
type ShellIntrospector interface {
	Scan(source string) (ShellRefs, error)
}

// ProceduralRefs is the result of statically scanning a procedural
// snippet or function body: the metadata variable names it looks up by
// literal name or runs via the host's exec_func/exec_task idiom (Vars),
// and the bare function names it calls (Calls).
type ProceduralRefs struct {
	Vars  []string
	Calls []string
}

// ProceduralIntrospector statically scans procedural-language source
// without executing it, recognizing the qualified call forms reftrack
// looks for (d.getVar, bb.data.getVar, data.getVar, d.expand,
// bb.data.expand, data.expand, bb.build.exec_func, bb.build.exec_task).
// A call whose variable-name argument is not a literal is reported via
// Diagnostics rather than silently dropped or guessed at.
type ProceduralIntrospector interface {
	Scan(source string) (ProceduralRefs, []Diagnostic, error)
}

// Diagnostic records a non-fatal issue surfaced while scanning embedded
// code, such as a getVar call whose argument isn't a string literal and
// so can't be resolved statically.
type Diagnostic struct {
	Message string
	Pos     int
}
