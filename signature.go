package bbexpr

import (
	"math/big"
	"strings"

	"github.com/kergoth/bbexpr/digest"
)

// Signature is a deterministic content fingerprint of a set of
// variables and everything they transitively reference, suitable as an
// incremental-build cache key: two stores that agree on the value of
// every variable a Signature's keys reach (directly or transitively,
// and after blacklisting) produce byte-identical signatures.
//
// Blacklisting happens before reference collection, not after: a
// blacklisted VariableRef becomes a Literal before its target name is
// ever looked for, so a denied variable's referent never enters the
// transitive closure and never contributes to the digest.
type Signature struct {
	Keys      []string
	Blacklist map[string]bool

	data map[string]Node
	refs map[string]bool
}

// BuildSignature walks keys and their transitive references (variable
// names, not execs/calls -- a Signature only covers what the recipe's
// variables expand to, not the external commands or functions they
// happen to name) through engine against store, recording each
// variable's blacklisted AST. When blacklist is nil/empty, the deny
// list defaults to BB_HASH_BLACKLIST's resolved value, whitespace-split
// into glob patterns, mirroring the original implementation's fallback.
func BuildSignature(engine *Engine, store Store, keys []string, blacklist map[string]bool) *Signature {
	if len(blacklist) == 0 {
		blacklist = defaultBlacklist(engine, store)
	}

	sig := &Signature{
		Keys:      append([]string(nil), keys...),
		Blacklist: blacklist,
		data:      map[string]Node{},
		refs:      map[string]bool{},
	}

	queue := append([]string(nil), keys...)
	seen := map[string]bool{}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true
		if matchesDenyList(blacklist, name) {
			continue
		}

		node, ok := engine.ValueFor(store, name)
		if !ok {
			continue
		}
		blacklisted, _ := engine.Blacklist(store, node, blacklist)
		sig.data[name] = blacklisted

		refs := engine.ReferencesOfNode(store, blacklisted)
		for ref := range refs.Vars {
			sig.refs[ref] = true
			if !seen[ref] {
				queue = append(queue, ref)
			}
		}
	}
	return sig
}

// defaultBlacklist reads BB_HASH_BLACKLIST from store, if bound, and
// splits it on whitespace into deny-list patterns.
func defaultBlacklist(engine *Engine, store Store) map[string]bool {
	value, err := engine.Resolve(store, "BB_HASH_BLACKLIST")
	if err != nil || value == "" {
		return nil
	}
	patterns := map[string]bool{}
	for _, pattern := range strings.Fields(value) {
		patterns[pattern] = true
	}
	return patterns
}

// DataString renders the signature's recorded data as canonical text,
// the exact input the digest is computed over.
func (s *Signature) DataString() string {
	return stableMapRepr(s.data)
}

// Digest computes the signature's 128-bit digest.
func (s *Signature) Digest() digest.Hash {
	return digest.Sum([]byte(s.DataString()))
}

// HashBigInt returns the digest as an unsigned big integer, matching
// the original implementation's Signature.hash() return convention for
// callers that want a numeric rather than textual/binary form.
func (s *Signature) HashBigInt() *big.Int {
	return new(big.Int).SetBytes(s.Digest().Bytes())
}

// References returns every variable name discovered while building the
// signature as a reference of a recorded value. A seed key is included
// only when some recorded value references it.
func (s *Signature) References() []string {
	out := make([]string, 0, len(s.refs))
	for name := range s.refs {
		out = append(out, name)
	}
	return out
}

// ReferencesString renders the signature's discovered reference set in
// canonical Set(...) form.
func (s *Signature) ReferencesString() string {
	return stableSetRepr(s.refs)
}
