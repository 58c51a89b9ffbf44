package validation

import "strings"

// StringSet is a set of strings that remembers insertion order, so error
// messages render members the same way they were configured.
type StringSet struct {
	items  []string
	member map[string]struct{}
}

// NewStringSet builds a set from values, dropping duplicates.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{member: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *StringSet) Add(v string) {
	if _, ok := s.member[v]; ok {
		return
	}
	s.member[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *StringSet) Has(v string) bool {
	_, ok := s.member[v]
	return ok
}

func (s *StringSet) Len() int { return len(s.items) }

// Values returns the members in insertion order.
func (s *StringSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Minus returns the members of s not present in other, keeping s's order.
func (s *StringSet) Minus(other *StringSet) *StringSet {
	out := NewStringSet()
	for _, v := range s.items {
		if !other.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Equal reports whether both sets hold the same members, in any order.
func (s *StringSet) Equal(other *StringSet) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, v := range s.items {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// String renders the set as {a, b, c}.
func (s *StringSet) String() string {
	return "{" + strings.Join(s.items, ", ") + "}"
}
