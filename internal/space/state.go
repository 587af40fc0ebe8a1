package space

import (
	"fmt"
	"strings"
)

// #region domain

// Domain describes a scalar domain: the set of legal values a basis element's
// scalar may take, plus the origin value every element starts from.
type Domain[V comparable] interface {
	// Origin is the default value assigned to every basis element at
	// construction.
	Origin() V

	// Contains reports whether v is a legal member of the domain.
	Contains(v V) bool
}

// #endregion domain

// #region state

// State is the shared core of every state-space realization: the ordered
// basis-element sequence plus the mapping from element name to its current
// scalar. The element sequence is fixed at construction and preserved in
// insertion order; only the scalar mapping mutates. Duplicate element names
// are legal but redundant; they share a single scalar slot.
//
// State is not safe for concurrent use; see Guarded.
type State[V comparable] struct {
	elements []string
	scalars  map[string]V
}

// NewState builds the scalar mapping for the given basis elements, eagerly
// initialized to the domain's origin value.
func NewState[V comparable](elements []string, d Domain[V]) State[V] {
	elems := make([]string, len(elements))
	copy(elems, elements)
	scalars := make(map[string]V, len(elems))
	for _, name := range elems {
		scalars[name] = d.Origin()
	}
	return State[V]{elements: elems, scalars: scalars}
}

// RestoreState rebuilds a state from a persisted snapshot, pairing scalars[i]
// with elements[i]. Scalar values are taken as-is, without domain membership
// checks, so a corrupted snapshot stays loadable and Check can report it.
func RestoreState[V comparable](elements []string, scalars []V) (State[V], error) {
	if len(scalars) != len(elements) {
		return State[V]{}, fmt.Errorf("restore state: %d elements but %d scalars", len(elements), len(scalars))
	}
	elems := make([]string, len(elements))
	copy(elems, elements)
	m := make(map[string]V, len(elems))
	for i, name := range elems {
		m[name] = scalars[i]
	}
	return State[V]{elements: elems, scalars: m}, nil
}

// CheckAll reports whether every scalar is a member of d.
func (st *State[V]) CheckAll(d Domain[V]) bool {
	for _, name := range st.elements {
		if !d.Contains(st.scalars[name]) {
			return false
		}
	}
	return true
}

// Get returns the current scalar of the named basis element.
func (st *State[V]) Get(name string) (V, bool) {
	v, ok := st.scalars[name]
	return v, ok
}

// Set replaces the scalar of the named basis element. Unknown names are
// rejected rather than inserted; the basis is closed after construction.
func (st *State[V]) Set(name string, v V) error {
	if _, ok := st.scalars[name]; !ok {
		return &UnknownBasisElementError{Selector: name}
	}
	st.scalars[name] = v
	return nil
}

// Scalars returns the scalar values in construction order, parallel to
// Elements.
func (st *State[V]) Scalars() []V {
	out := make([]V, len(st.elements))
	for i, name := range st.elements {
		out[i] = st.scalars[name]
	}
	return out
}

// #endregion state

// #region collection

// Elements returns the basis elements in construction order.
func (st *State[V]) Elements() []string {
	out := make([]string, len(st.elements))
	copy(out, st.elements)
	return out
}

// Contains reports whether name is a basis element of this state.
func (st *State[V]) Contains(name string) bool {
	_, ok := st.scalars[name]
	return ok
}

// Len returns the number of basis elements, duplicates included.
func (st *State[V]) Len() int {
	return len(st.elements)
}

// Sized is anything with a basis-element count. It lets spaces over
// different scalar domains be size-ordered against each other.
type Sized interface {
	Len() int
}

// Cmp orders st against other by basis-element count: -1 when st is smaller,
// +1 when larger, 0 when equal.
func (st *State[V]) Cmp(other Sized) int {
	n := other.Len()
	switch {
	case st.Len() < n:
		return -1
	case st.Len() > n:
		return 1
	}
	return 0
}

// #endregion collection

// #region render

// Render writes the superposition in construction order as
// "<scalar><name> + <scalar><name> + ...", using label to print each scalar.
// This is a derived view, not part of the invariant.
func (st *State[V]) Render(label func(V) string) string {
	var b strings.Builder
	for i, name := range st.elements {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(label(st.scalars[name]))
		b.WriteString("<")
		b.WriteString(name)
		b.WriteString(">")
	}
	return b.String()
}

// #endregion render

// #region names

// Names converts mixed basis-element identifiers to their canonical string
// form. Numeric identifiers are stringified before construction; this is a
// key-normalization step, not a semantic one.
func Names(ids ...any) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprint(id)
	}
	return out
}

// #endregion names
