// Package bbexprtest holds fixtures shared by bbexpr's own tests and its
// subpackages' tests: a quick way to build a populated memstore.Store
// without every test file repeating the same boilerplate.
package bbexprtest

import "github.com/kergoth/bbexpr/memstore"

// Var is one variable binding for NewStore, with optional flags.
type Var struct {
	Name  string
	Value string
	Flags map[string]string
}

// NewStore builds a memstore.Store populated with vars.
func NewStore(vars ...Var) *memstore.Store {
	store := memstore.New()
	for _, v := range vars {
		store.Set(v.Name, v.Value)
		for flag, val := range v.Flags {
			store.SetFlag(v.Name, flag, val)
		}
	}
	return store
}
