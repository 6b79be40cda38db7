package core

import (
	"cmp"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Set is an unordered collection of distinct comparable values.
// The zero value (nil) is a valid empty set for reads; use NewSet before Add.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts v and reports whether the set grew.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}

	return true
}

// AddAll inserts every member of other and reports whether the set grew.
func (s Set[T]) AddAll(other Set[T]) bool {
	grew := false
	for v := range other {
		if s.Add(v) {
			grew = true
		}
	}

	return grew
}

// Has reports membership.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Remove deletes v and reports whether it was present.
func (s Set[T]) Remove(v T) bool {
	if _, ok := s[v]; !ok {
		return false
	}
	delete(s, v)

	return true
}

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// Clone returns an independent copy.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}

// Union returns s ∪ other as a new set.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := s.Clone()
	out.AddAll(other)

	return out
}

// Intersect returns s ∩ other as a new set.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if other.Has(v) {
			out[v] = struct{}{}
		}
	}

	return out
}

// Difference returns s \ other as a new set.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if !other.Has(v) {
			out[v] = struct{}{}
		}
	}

	return out
}

// Intersects reports whether s ∩ other is non-empty without allocating.
func (s Set[T]) Intersects(other Set[T]) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for v := range small {
		if large.Has(v) {
			return true
		}
	}

	return false
}

// SubsetOf reports whether every member of s is in other.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}

	return true
}

// Equal reports set equality (order-independent).
func (s Set[T]) Equal(other Set[T]) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the members ordered by Compare.
func (s Set[T]) Sorted() []T {
	keys := maps.Keys(s)
	sort.Slice(keys, func(i, j int) bool { return Compare(keys[i], keys[j]) < 0 })

	return keys
}

// String renders the set as {a, b, c} in Sorted order.
func (s Set[T]) String() string {
	return "{" + Join(s.Sorted(), ", ") + "}"
}

// Compare returns -1, 0 or +1 ordering a before, equal to or after b.
//
// Numbers of one type (wrapped in a State or a labeled Symbol, or bare)
// compare numerically, so 2 sorts before 10; numbers of different types
// are grouped by type name. Everything else orders by its fmt rendering,
// then by its Go-syntax rendering.
func Compare[T any](a, b T) int {
	if c, ok := compareNumbers(a, b); ok {
		return c
	}
	if c := strings.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
		return c
	}

	return strings.Compare(fmt.Sprintf("%#v", a), fmt.Sprintf("%#v", b))
}

// sortKeyer exposes the value a State or labeled Symbol wraps.
type sortKeyer interface {
	sortKey() (any, bool)
}

func unwrap(v any) (any, bool) {
	if k, ok := v.(sortKeyer); ok {
		return k.sortKey()
	}

	return v, true
}

// compareNumbers reports ok only when both operands unwrap to numbers.
func compareNumbers(a, b any) (int, bool) {
	x, okX := unwrap(a)
	y, okY := unwrap(b)
	if !okX || !okY {
		return 0, false
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if !numeric(vx) || !numeric(vy) {
		return 0, false
	}
	if tx, ty := vx.Type(), vy.Type(); tx != ty {
		if c := cmp.Compare(tx.String(), ty.String()); c != 0 {
			return c, true
		}
		return 0, false
	}

	switch vx.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(vx.Int(), vy.Int()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(vx.Float(), vy.Float()), true
	default:
		return cmp.Compare(vx.Uint(), vy.Uint()), true
	}
}

func numeric(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Join renders items via fmt and joins them with sep.
func Join[T any](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}

	return strings.Join(parts, sep)
}
