package bbexpr

// Store is the read-only metadata view the engine consumes. A host's real
// metadata store (key -> (value, flags)) sits behind this interface; the
// engine never mutates it and never assumes anything about its internal
// representation beyond what this interface exposes.
//
// Handle must return a value that is stable for the lifetime of the store
// and distinct across distinct stores (even stores with identical
// contents), so that the factory's memoization key -- (name, raw value,
// store handle) -- behaves as spec'd: a fresh store always produces fresh
// ASTs, and a store mutated in place (same handle, new raw value for a
// name) invalidates exactly the memo entries for names whose raw value
// changed.
type Store interface {
	// Get returns the raw value bound to name. ok is false if name is
	// unbound. isText is false for a raw value that did not originate as
	// a string (a number, a bool, ...); such values bypass tokenizing
	// entirely and are wrapped as a single Literal.
	Get(name string) (text string, isText bool, ok bool)

	// GetFlag returns the value of the given flag on name. ok is false
	// if the flag is unset. BitBake treats a flag as "set" when its
	// value is a non-empty string; callers needing that convention
	// should treat ("", true) and (false) identically to unset.
	GetFlag(name, flag string) (value string, ok bool)

	// GetFlags returns every flag set on name. The returned map must not
	// be mutated by the caller.
	GetFlags(name string) map[string]string

	// Keys returns every variable name currently bound in the store, in
	// no particular order.
	Keys() []string

	// Handle returns a value stable for the lifetime of this store and
	// distinct from that of any other store instance.
	Handle() uint64
}

// FlagBool reports whether a flag is set on name, using BitBake's
// truthy-non-empty-string convention.
func FlagBool(store Store, name, flag string) bool {
	v, ok := store.GetFlag(name, flag)
	return ok && v != ""
}
