// Package memstore provides a reference in-memory bbexpr.Store, the
// kind of host a test or a small standalone tool wires up directly
// rather than adapting an existing configuration system.
package memstore

import "sync/atomic"

var nextHandle uint64

// Store is a plain in-memory metadata store. The zero value is not
// usable; construct one with New.
type Store struct {
	handle uint64
	vars   map[string]string
	isText map[string]bool
	flags  map[string]map[string]string
}

// New returns an empty Store with a handle distinct from every other
// Store returned by New in this process.
func New() *Store {
	return &Store{
		handle: atomic.AddUint64(&nextHandle, 1),
		vars:   map[string]string{},
		isText: map[string]bool{},
		flags:  map[string]map[string]string{},
	}
}

// Set binds name to value.
func (s *Store) Set(name, value string) {
	s.vars[name] = value
	s.isText[name] = true
}

// SetFlag sets flag on name.
func (s *Store) SetFlag(name, flag, value string) {
	m, ok := s.flags[name]
	if !ok {
		m = map[string]string{}
		s.flags[name] = m
	}
	m[flag] = value
}

// Get implements bbexpr.Store.
func (s *Store) Get(name string) (string, bool, bool) {
	v, ok := s.vars[name]
	if !ok {
		return "", false, false
	}
	return v, s.isText[name], true
}

// GetFlag implements bbexpr.Store.
func (s *Store) GetFlag(name, flag string) (string, bool) {
	m, ok := s.flags[name]
	if !ok {
		return "", false
	}
	v, ok := m[flag]
	return v, ok
}

// GetFlags implements bbexpr.Store.
func (s *Store) GetFlags(name string) map[string]string {
	return s.flags[name]
}

// Keys implements bbexpr.Store.
func (s *Store) Keys() []string {
	out := make([]string, 0, len(s.vars))
	for k := range s.vars {
		out = append(out, k)
	}
	return out
}

// Handle implements bbexpr.Store.
func (s *Store) Handle() uint64 { return s.handle }
