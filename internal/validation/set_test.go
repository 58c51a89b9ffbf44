package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSetKeepsInsertionOrder(t *testing.T) {
	s := NewStringSet("open", "closed", "open")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"open", "closed"}, s.Values())
	assert.Equal(t, "{open, closed}", s.String())
}

func TestStringSetMembership(t *testing.T) {
	s := NewStringSet("on", "off")

	assert.True(t, s.Has("on"))
	assert.False(t, s.Has("maybe"))
}

func TestStringSetMinus(t *testing.T) {
	s := NewStringSet("a", "b", "c")

	diff := s.Minus(NewStringSet("b"))
	assert.Equal(t, []string{"a", "c"}, diff.Values())

	assert.Equal(t, "{}", s.Minus(s).String())
}

func TestStringSetEqual(t *testing.T) {
	assert.True(t, NewStringSet("a", "b").Equal(NewStringSet("b", "a")))
	assert.False(t, NewStringSet("a").Equal(NewStringSet("a", "b")))
	assert.False(t, NewStringSet("a", "b").Equal(NewStringSet("a", "c")))
}
