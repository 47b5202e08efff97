// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Override is a single key→value pair applied to an environment file.
type Override struct {
	Key   string
	Value string
}

// OverrideSet is an immutable ordered mapping from variable names to their new
// values. The position of a key is fixed by its first insertion; setting the
// same key again replaces the value in place. Keys absent from a target file
// are appended in this order.
//
// The zero value is an empty set ready to use.
type OverrideSet struct {
	keys   []string
	values map[string]string
}

// NewOverrideSet builds an [OverrideSet] from pairs in the given order.
func NewOverrideSet(pairs ...Override) OverrideSet {
	s := OverrideSet{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		s.set(p.Key, p.Value)
	}
	return s
}

// With returns a copy of the set with key set to value. The receiver is not
// modified.
func (s OverrideSet) With(key, value string) OverrideSet {
	c := s.clone()
	c.set(key, value)
	return c
}

// WithAll returns a copy of the set with every pair of other applied in
// other's order.
func (s OverrideSet) WithAll(other OverrideSet) OverrideSet {
	c := s.clone()
	for _, k := range other.keys {
		c.set(k, other.values[k])
	}
	return c
}

// Get returns the value for key and whether the key is present.
func (s OverrideSet) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present in the set.
func (s OverrideSet) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the keys in their defined order. The returned slice is a copy.
func (s OverrideSet) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Pairs returns the content of the set as ordered pairs.
func (s OverrideSet) Pairs() []Override {
	pairs := make([]Override, 0, len(s.keys))
	for _, k := range s.keys {
		pairs = append(pairs, Override{Key: k, Value: s.values[k]})
	}
	return pairs
}

// Len returns the number of keys in the set.
func (s OverrideSet) Len() int {
	return len(s.keys)
}

func (s OverrideSet) clone() OverrideSet {
	c := OverrideSet{
		keys:   make([]string, len(s.keys), len(s.keys)+1),
		values: make(map[string]string, len(s.values)+1),
	}
	copy(c.keys, s.keys)
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}

func (s *OverrideSet) set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}
